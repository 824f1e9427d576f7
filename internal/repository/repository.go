package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repositories bundles every store the services depend on, regardless of backend.
type Repositories struct {
	Users        UserRepository
	Cases        CaseRepository
	Appointments AppointmentRepository
	Videos       VideoRepository

	ping  func(ctx context.Context) error
	close func() error
}

// NewRepositories wires the sqlx implementations (SQLite, PostgreSQL).
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Cases:        NewCaseRepository(db),
		Appointments: NewAppointmentRepository(db),
		Videos:       NewVideoRepository(db),
		ping:         db.PingContext,
		close:        db.Close,
	}
}

// WithLifecycle attaches backend-specific health and shutdown hooks.
func (r *Repositories) WithLifecycle(ping func(ctx context.Context) error, close func() error) *Repositories {
	r.ping = ping
	r.close = close
	return r
}

func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
