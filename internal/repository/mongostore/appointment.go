package mongostore

import (
	"context"

	"github.com/unionlaw/lawfirm/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type appointmentStore struct {
	col *mongo.Collection
}

func (s *appointmentStore) Create(ctx context.Context, a *model.Appointment) error {
	_, err := s.col.InsertOne(ctx, a)
	return err
}

func (s *appointmentStore) ByUser(ctx context.Context, userID string) ([]*model.Appointment, error) {
	return findMany[model.Appointment](ctx, s.col, bson.D{{Key: "user_id", Value: userID}}, byCreation())
}
