package handler

import (
	"net/http"

	"github.com/unionlaw/lawfirm/internal/service"
)

type videoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *videoHandler {
	return &videoHandler{
		videoService: videoService,
	}
}

func (h *videoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videoService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// Get counts a view on every call.
func (h *videoHandler) Get(w http.ResponseWriter, r *http.Request) {
	video, err := h.videoService.View(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, video)
}
