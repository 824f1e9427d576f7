package mongostore

import (
	"context"
	"time"

	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type caseStore struct {
	col *mongo.Collection
}

func (s *caseStore) Create(ctx context.Context, c *model.Case) error {
	if c.Files == nil {
		c.Files = model.FileRefs{}
	}
	_, err := s.col.InsertOne(ctx, c)
	return err
}

func (s *caseStore) ByID(ctx context.Context, caseID string) (*model.Case, error) {
	return findOne[model.Case](ctx, s.col, bson.D{{Key: "_id", Value: caseID}}, repository.ErrCaseNotFound)
}

func (s *caseStore) ByIDForUser(ctx context.Context, caseID, userID string) (*model.Case, error) {
	filter := bson.D{{Key: "_id", Value: caseID}, {Key: "user_id", Value: userID}}
	return findOne[model.Case](ctx, s.col, filter, repository.ErrCaseNotFound)
}

func (s *caseStore) ByUser(ctx context.Context, userID string) ([]*model.Case, error) {
	return findMany[model.Case](ctx, s.col, bson.D{{Key: "user_id", Value: userID}}, byCreation())
}

func (s *caseStore) All(ctx context.Context) ([]*model.Case, error) {
	return findMany[model.Case](ctx, s.col, bson.D{}, byCreation())
}

func (s *caseStore) UpdateStatus(ctx context.Context, caseID, status string, updatedAt time.Time) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: updatedAt},
	}}}

	res, err := s.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: caseID}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrCaseNotFound
	}
	return nil
}
