package validation

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

// FileConstraints is one accepted family of attachments. Content is sniffed,
// so a renamed binary fails even with an allowed extension.
type FileConstraints struct {
	MediaTypes []string
	Extensions []string
	MaxSize    int64
}

var (
	// ImageConstraints covers scanned documents and photos.
	ImageConstraints = FileConstraints{
		MediaTypes: []string{"image/jpeg", "image/png", "image/webp"},
		Extensions: []string{".jpg", ".jpeg", ".png", ".webp"},
		MaxSize:    10 << 20,
	}

	// DocumentConstraints covers PDF, plain text and DOCX (sniffed as a zip container).
	DocumentConstraints = FileConstraints{
		MediaTypes: []string{"application/pdf", "text/plain", "application/zip"},
		Extensions: []string{".pdf", ".txt", ".docx"},
		MaxSize:    20 << 20,
	}
)

type sniffed struct {
	mediaType string
	ext       string
	size      int64
}

func (c FileConstraints) check(f sniffed) error {
	if f.size > c.MaxSize {
		return fmt.Errorf("file too large: maximum size is %d MB", c.MaxSize>>20)
	}
	if !slices.Contains(c.MediaTypes, f.mediaType) {
		return fmt.Errorf("invalid file type (detected: %s)", f.mediaType)
	}
	if !slices.Contains(c.Extensions, f.ext) {
		return fmt.Errorf("invalid file extension: %q", f.ext)
	}
	return nil
}

// ValidateFile passes when the upload satisfies any one of the constraint sets.
// The error returned is the one from the last set tried.
func ValidateFile(header *multipart.FileHeader, constraints ...FileConstraints) error {
	if len(constraints) == 0 {
		return errors.New("no file constraints provided")
	}

	f, err := sniff(header)
	if err != nil {
		return err
	}

	for _, c := range constraints {
		err = c.check(f)
		if err == nil {
			return nil
		}
	}
	return err
}

func sniff(header *multipart.FileHeader) (sniffed, error) {
	file, err := header.Open()
	if err != nil {
		return sniffed{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// DetectContentType never looks past 512 bytes.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return sniffed{}, fmt.Errorf("failed to read file: %w", err)
	}

	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(head[:n]))
	if err != nil {
		return sniffed{}, fmt.Errorf("failed to detect file type: %w", err)
	}

	return sniffed{
		mediaType: mediaType,
		ext:       strings.ToLower(filepath.Ext(header.Filename)),
		size:      header.Size,
	}, nil
}
