package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/unionlaw/lawfirm/internal/model"
)

var (
	ErrVideoNotFound = errors.New("video not found")
)

type VideoRepository interface {
	Create(ctx context.Context, v *model.Video) error
	All(ctx context.Context) ([]*model.Video, error)
	IncrementViews(ctx context.Context, id string) (*model.Video, error)
}

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, v *model.Video) error {
	query := `INSERT INTO videos (id, title, description, video_url, thumbnail_url, category, duration, views, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.Title,
		v.Description,
		v.VideoURL,
		v.ThumbnailURL,
		v.Category,
		v.Duration,
		v.Views,
		v.CreatedAt,
	)

	return err
}

func (r *videoRepository) All(ctx context.Context) ([]*model.Video, error) {
	videos := []*model.Video{}
	query := `SELECT * FROM videos ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &videos, query)
	if err != nil {
		return nil, err
	}

	return videos, nil
}

// IncrementViews bumps the counter in a single statement and returns the updated row.
func (r *videoRepository) IncrementViews(ctx context.Context, id string) (*model.Video, error) {
	v := &model.Video{}
	query := `UPDATE videos SET views = views + 1 WHERE id = $1 RETURNING *`

	err := r.db.GetContext(ctx, v, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}

	return v, nil
}
