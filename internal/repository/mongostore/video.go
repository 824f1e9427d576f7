package mongostore

import (
	"context"
	"errors"

	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type videoStore struct {
	col *mongo.Collection
}

func (s *videoStore) Create(ctx context.Context, v *model.Video) error {
	_, err := s.col.InsertOne(ctx, v)
	return err
}

func (s *videoStore) All(ctx context.Context) ([]*model.Video, error) {
	return findMany[model.Video](ctx, s.col, bson.D{}, byCreation())
}

// IncrementViews issues a single $inc and returns the document after the update.
func (s *videoStore) IncrementViews(ctx context.Context, id string) (*model.Video, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}

	var v model.Video
	err := s.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
