package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/repository"
	"github.com/unionlaw/lawfirm/internal/validation"
)

type AppointmentService struct {
	appointmentRepository repository.AppointmentRepository
	consultationFee       float64
}

func NewAppointmentService(appointmentRepository repository.AppointmentRepository, consultationFee float64) *AppointmentService {
	return &AppointmentService{
		appointmentRepository: appointmentRepository,
		consultationFee:       consultationFee,
	}
}

type AppointmentInput struct {
	AppointmentDate string  `json:"appointment_date"`
	Notes           *string `json:"notes"`
}

// Create books a pending consultation. The amount always comes from configuration.
func (s *AppointmentService) Create(ctx context.Context, ownerID string, in AppointmentInput) (*model.Appointment, error) {
	date, err := validation.ParseDateTime(in.AppointmentDate)
	if err != nil {
		return nil, invalid("appointment_date", err)
	}

	notes := in.Notes
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed == "" {
			notes = nil
		} else {
			notes = &trimmed
		}
	}

	a := &model.Appointment{
		ID:              uuid.New().String(),
		UserID:          ownerID,
		AppointmentDate: date,
		Status:          model.AppointmentStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		Amount:          s.consultationFee,
		Notes:           notes,
		CreatedAt:       time.Now().UTC(),
	}

	err = s.appointmentRepository.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	slog.Info("appointment scheduled", "appointment_id", a.ID, "user_id", ownerID)
	return a, nil
}

func (s *AppointmentService) ListForOwner(ctx context.Context, ownerID string) ([]*model.Appointment, error) {
	appointments, err := s.appointmentRepository.ByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
