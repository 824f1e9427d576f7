package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/unionlaw/lawfirm/internal/storage"
	"github.com/unionlaw/lawfirm/internal/validation"
)

// FileService persists case attachments and hands back their stored names.
type FileService struct {
	storage storage.Storage
}

func NewFileService(storage storage.Storage) *FileService {
	return &FileService{
		storage: storage,
	}
}

// SaveAttachments validates and stores every upload under a random name that keeps
// the original extension exactly, case included. Parts without a filename are skipped. On failure the
// files already written are removed.
func (s *FileService) SaveAttachments(ctx context.Context, headers []*multipart.FileHeader) ([]string, error) {
	names := []string{}

	for _, header := range headers {
		if header == nil || header.Filename == "" {
			continue
		}

		err := validation.ValidateFile(header, validation.DocumentConstraints, validation.ImageConstraints)
		if err != nil {
			s.Remove(ctx, names)
			return nil, invalid("files", fmt.Errorf("%s: %w", header.Filename, err))
		}

		name, err := s.save(ctx, header)
		if err != nil {
			s.Remove(ctx, names)
			return nil, err
		}
		names = append(names, name)
	}

	return names, nil
}

func (s *FileService) save(ctx context.Context, header *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + filepath.Ext(header.Filename)

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	err = s.storage.Save(ctx, name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return name, nil
}

// Remove deletes stored attachments, best effort.
func (s *FileService) Remove(ctx context.Context, names []string) {
	for _, name := range names {
		err := s.storage.Delete(ctx, name)
		if err != nil {
			slog.Error("failed to delete file from storage during cleanup", "error", err, "path", name)
		}
	}
}

// URLs returns a link per stored name. Presigned for S3, so the links expire.
func (s *FileService) URLs(names []string) []string {
	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, s.storage.URL(name))
	}
	return urls
}
