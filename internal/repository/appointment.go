package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/unionlaw/lawfirm/internal/model"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) error
	ByUser(ctx context.Context, userID string) ([]*model.Appointment, error)
}

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	query := `INSERT INTO appointments (id, user_id, appointment_date, status, payment_status, amount, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.AppointmentDate,
		a.Status,
		a.PaymentStatus,
		a.Amount,
		a.Notes,
		a.CreatedAt,
	)

	return err
}

func (r *appointmentRepository) ByUser(ctx context.Context, userID string) ([]*model.Appointment, error) {
	appointments := []*model.Appointment{}
	query := `SELECT * FROM appointments WHERE user_id = $1 ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &appointments, query, userID)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}
