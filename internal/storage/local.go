package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience claim of attachment link tokens. Session tokens carry none.
const linkAudience = "uploads"

var ErrInvalidLink = errors.New("invalid or expired attachment link")

// LocalStorage writes attachments under a server-controlled directory.
type LocalStorage struct {
	root    string
	baseURL string

	// Set by WithSignedLinks.
	linkKey []byte
	linkTTL time.Duration
	now     func() time.Time
}

type LocalOption func(*LocalStorage)

// WithSignedLinks makes URL return links carrying a short-lived token, the local
// counterpart of an S3 presigned URL. VerifyLink checks them.
func WithSignedLinks(key []byte, ttl time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.linkKey = key
		s.linkTTL = ttl
	}
}

func NewLocalStorage(root, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	err := os.MkdirAll(root, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	s := &LocalStorage{root: root, baseURL: strings.TrimSuffix(baseURL, "/"), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *LocalStorage) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	full := filepath.Join(s.root, clean)
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid storage path %q", path)
	}
	return full, nil
}

func (s *LocalStorage) Save(ctx context.Context, path string, file io.Reader, _ int64, _ string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(full), 0755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	out, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(out, readerWithContext(ctx, file))
	closeErr := out.Close()
	if err != nil {
		_ = os.Remove(full)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close file: %w", closeErr)
	}

	return nil
}

func (s *LocalStorage) Delete(_ context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	err = os.Remove(full)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) URL(path string) string {
	name := strings.TrimPrefix(filepath.ToSlash(path), "/")
	link := fmt.Sprintf("%s/%s", s.baseURL, name)
	if len(s.linkKey) == 0 {
		return link
	}

	now := s.now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   name,
		Audience:  jwt.ClaimStrings{linkAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.linkTTL)),
	}).SignedString(s.linkKey)
	if err != nil {
		return link
	}
	return link + "?token=" + url.QueryEscape(token)
}

// VerifyLink reports whether token is a live link token for the stored file name.
func (s *LocalStorage) VerifyLink(name, token string) error {
	if len(s.linkKey) == 0 || token == "" {
		return ErrInvalidLink
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.linkKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(linkAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || claims.Subject != name {
		return ErrInvalidLink
	}
	return nil
}

// Path resolves a stored name to its file on disk.
func (s *LocalStorage) Path(name string) (string, error) {
	return s.resolve(name)
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	err := c.ctx.Err()
	if err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// readerWithContext stops a copy once the request is cancelled.
func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}
