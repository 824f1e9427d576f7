package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/repository"
	"github.com/unionlaw/lawfirm/internal/validation"
)

type VideoService struct {
	videoRepository repository.VideoRepository
}

func NewVideoService(videoRepository repository.VideoRepository) *VideoService {
	return &VideoService{
		videoRepository: videoRepository,
	}
}

func (s *VideoService) List(ctx context.Context) ([]*model.Video, error) {
	videos, err := s.videoRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// View counts one view and returns the video with the new count.
func (s *VideoService) View(ctx context.Context, id string) (*model.Video, error) {
	v, err := s.videoRepository.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to view video: %w", err)
	}
	return v, nil
}

// Create adds a catalog entry. Missing ids and timestamps are filled in.
func (s *VideoService) Create(ctx context.Context, v *model.Video) error {
	err := validation.ValidateText("title", v.Title, 200)
	if err != nil {
		return invalid("title", err)
	}
	err = validation.ValidateText("video_url", v.VideoURL, 2048)
	if err != nil {
		return invalid("video_url", err)
	}

	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	err = s.videoRepository.Create(ctx, v)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}
