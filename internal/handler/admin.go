package handler

import (
	"net/http"

	"github.com/unionlaw/lawfirm/internal/service"
)

type adminHandler struct {
	caseService *service.CaseService
}

func NewAdminHandler(caseService *service.CaseService) *adminHandler {
	return &adminHandler{
		caseService: caseService,
	}
}

func (h *adminHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.caseService.AdminListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cases)
}

// UpdateCaseStatus takes the new status from the "status" query parameter,
// falling back to a JSON body {"status": "..."}.
func (h *adminHandler) UpdateCaseStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" && r.ContentLength != 0 {
		var body struct {
			Status string `json:"status"`
		}
		err := decodeJSON(w, r, &body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		status = body.Status
	}
	if status == "" {
		writeError(w, r, &service.ValidationError{Field: "status", Message: "status is required"})
		return
	}

	err := h.caseService.AdminSetStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, message{Message: "Case status updated successfully"})
}
