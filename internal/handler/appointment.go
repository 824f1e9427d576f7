package handler

import (
	"net/http"

	"github.com/unionlaw/lawfirm/internal/ctxkeys"
	"github.com/unionlaw/lawfirm/internal/service"
)

type appointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *appointmentHandler {
	return &appointmentHandler{
		appointmentService: appointmentService,
	}
}

type appointmentCreated struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

// Create ignores any client-supplied amount; the fee is set server side.
func (h *appointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.AppointmentInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.appointmentService.Create(r.Context(), ctxkeys.User(r.Context()).ID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, appointmentCreated{
		Message:       "Appointment scheduled successfully",
		AppointmentID: a.ID,
		Status:        a.Status,
	})
}

func (h *appointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentService.ListForOwner(r.Context(), ctxkeys.User(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, appointments)
}
