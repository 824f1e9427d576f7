package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/unionlaw/lawfirm/internal/model"
)

var (
	ErrCaseNotFound = errors.New("case not found")
)

type CaseRepository interface {
	Create(ctx context.Context, c *model.Case) error
	ByID(ctx context.Context, caseID string) (*model.Case, error)
	ByIDForUser(ctx context.Context, caseID, userID string) (*model.Case, error)
	ByUser(ctx context.Context, userID string) ([]*model.Case, error)
	All(ctx context.Context) ([]*model.Case, error)
	UpdateStatus(ctx context.Context, caseID, status string, updatedAt time.Time) error
}

type caseRepository struct {
	db *sqlx.DB
}

func NewCaseRepository(db *sqlx.DB) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) Create(ctx context.Context, c *model.Case) error {
	query := `INSERT INTO cases (id, user_id, case_type, title, description, status, files, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.CaseType,
		c.Title,
		c.Description,
		c.Status,
		c.Files,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

func (r *caseRepository) ByID(ctx context.Context, caseID string) (*model.Case, error) {
	c := &model.Case{}
	query := `SELECT * FROM cases WHERE id = $1`

	err := r.db.GetContext(ctx, c, query, caseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// ByIDForUser returns ErrCaseNotFound both for unknown ids and for cases owned by someone else.
func (r *caseRepository) ByIDForUser(ctx context.Context, caseID, userID string) (*model.Case, error) {
	c := &model.Case{}
	query := `SELECT * FROM cases WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, c, query, caseID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *caseRepository) ByUser(ctx context.Context, userID string) ([]*model.Case, error) {
	cases := []*model.Case{}
	query := `SELECT * FROM cases WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &cases, query, userID)
	if err != nil {
		return nil, err
	}

	return cases, nil
}

func (r *caseRepository) All(ctx context.Context) ([]*model.Case, error) {
	cases := []*model.Case{}
	query := `SELECT * FROM cases ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &cases, query)
	if err != nil {
		return nil, err
	}

	return cases, nil
}

func (r *caseRepository) UpdateStatus(ctx context.Context, caseID, status string, updatedAt time.Time) error {
	query := `UPDATE cases SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, updatedAt, caseID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCaseNotFound
	}

	return nil
}
