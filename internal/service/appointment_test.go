package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionlaw/lawfirm/internal/model"
)

func TestCreateAppointment(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	notes := "  bring the marriage certificate "
	a, err := s.appointments.Create(ctx, "u1", AppointmentInput{
		AppointmentDate: "2026-11-02T14:30:00",
		Notes:           &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, a.Status)
	assert.Equal(t, model.PaymentStatusPending, a.PaymentStatus)
	assert.Equal(t, 100.0, a.Amount)
	assert.True(t, a.AppointmentDate.Equal(time.Date(2026, 11, 2, 14, 30, 0, 0, time.UTC)))
	require.NotNil(t, a.Notes)
	assert.Equal(t, "bring the marriage certificate", *a.Notes)

	list, err := s.appointments.ListForOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	list, err = s.appointments.ListForOwner(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateAppointmentUsesConfiguredFee(t *testing.T) {
	s := newTestServices(t)
	appointments := NewAppointmentService(s.repos.Appointments, 250)

	a, err := appointments.Create(context.Background(), "u1", AppointmentInput{AppointmentDate: "2026-11-02T09:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, 250.0, a.Amount)
	assert.Nil(t, a.Notes)
}

func TestCreateAppointmentRequiresDate(t *testing.T) {
	s := newTestServices(t)

	for _, date := range []string{"", "tomorrow"} {
		_, err := s.appointments.Create(context.Background(), "u1", AppointmentInput{AppointmentDate: date})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, date)
	}
}
