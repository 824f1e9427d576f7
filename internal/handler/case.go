package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/unionlaw/lawfirm/internal/ctxkeys"
	"github.com/unionlaw/lawfirm/internal/service"
)

const (
	maxUploadBody   = 64 << 20
	maxUploadMemory = 32 << 20
)

type caseHandler struct {
	caseService *service.CaseService
}

func NewCaseHandler(caseService *service.CaseService) *caseHandler {
	return &caseHandler{
		caseService: caseService,
	}
}

type caseCreated struct {
	Message string `json:"message"`
	CaseID  string `json:"case_id"`
	Status  string `json:"status"`
}

// Create accepts multipart/form-data with case_type, title, description and any number of "files" parts.
func (h *caseHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

	var attachments []*multipart.FileHeader
	err := r.ParseMultipartForm(maxUploadMemory)
	switch {
	case err == nil:
		defer func() { _ = r.MultipartForm.RemoveAll() }()
		attachments = r.MultipartForm.File["files"]
	case errors.Is(err, http.ErrNotMultipart):
		// Urlencoded forms carry no attachments.
		err = r.ParseForm()
		if err != nil {
			writeError(w, r, &service.ValidationError{Message: "invalid form body"})
			return
		}
	default:
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, r, err)
			return
		}
		writeError(w, r, &service.ValidationError{Message: "invalid multipart body"})
		return
	}

	in := service.CaseInput{
		CaseType:    r.FormValue("case_type"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	c, err := h.caseService.Submit(r.Context(), ctxkeys.User(r.Context()), in, attachments)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, caseCreated{
		Message: "Case submitted successfully",
		CaseID:  c.ID,
		Status:  c.Status,
	})
}

func (h *caseHandler) List(w http.ResponseWriter, r *http.Request) {
	cases, err := h.caseService.ListForOwner(r.Context(), ctxkeys.User(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cases)
}

func (h *caseHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.caseService.Get(r.Context(), r.PathValue("id"), ctxkeys.User(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}
