// Package mongostore implements the repository interfaces on MongoDB.
//
// Documents are (de)serialized through the bson tags on the model structs.
// Collection names and indexes are managed in ensureIndexes.
package mongostore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/unionlaw/lawfirm/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	ColUsers        = "users"
	ColCases        = "cases"
	ColAppointments = "appointments"
	ColVideos       = "videos"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to uri and selects dbName, e.g. "mongodb://localhost:27017" and "law_firm_db".
func NewStore(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect failed: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: ping failed: %w", err)
	}

	s := &Store{client: client, db: client.Database(dbName)}

	err = s.ensureIndexes(ctx)
	if err != nil {
		slog.Warn("mongostore: ensure indexes failed", "error", err)
	}

	slog.Info("database connected", "driver", "mongo", "database", dbName)
	return s, nil
}

// Repositories exposes the store through the backend-neutral repository set.
func (s *Store) Repositories() *repository.Repositories {
	repos := &repository.Repositories{
		Users:        &userStore{col: s.col(ColUsers)},
		Cases:        &caseStore{col: s.col(ColCases)},
		Appointments: &appointmentStore{col: s.col(ColAppointments)},
		Videos:       &videoStore{col: s.col(ColVideos)},
	}
	return repos.WithLifecycle(s.Ping, s.Close)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColCases, bson.D{{Key: "user_id", Value: 1}}, false},
		{ColCases, bson.D{{Key: "created_at", Value: 1}}, false},
		{ColAppointments, bson.D{{Key: "user_id", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		_, err := s.col(i.col).Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}

	return nil
}
