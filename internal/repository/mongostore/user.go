package mongostore

import (
	"context"

	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userStore struct {
	col *mongo.Collection
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	_, err := s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicateEmail
	}
	return err
}

func (s *userStore) ByID(ctx context.Context, id string) (*model.User, error) {
	return findOne[model.User](ctx, s.col, bson.D{{Key: "_id", Value: id}}, repository.ErrUserNotFound)
}

func (s *userStore) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, s.col, bson.D{{Key: "email", Value: email}}, repository.ErrUserNotFound)
}
