package handler

import (
	"net/http"

	"github.com/unionlaw/lawfirm/internal/storage"
)

// uploadHandler serves attachments kept on local disk.
type uploadHandler struct {
	files *storage.LocalStorage
}

func NewUploadHandler(files *storage.LocalStorage) *uploadHandler {
	return &uploadHandler{
		files: files,
	}
}

// Signed serves the file straight away when the request carries a valid link
// token for it. Anything else falls through to next.
func (h *uploadHandler) Signed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token != "" && h.files.VerifyLink(r.PathValue("name"), token) == nil {
			h.Serve(w, r)
			return
		}
		next(w, r)
	}
}

func (h *uploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	path, err := h.files.Path(r.PathValue("name"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, no-store")
	http.ServeFile(w, r, path)
}
