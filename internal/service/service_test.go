package service

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/unionlaw/lawfirm/internal/db"
	"github.com/unionlaw/lawfirm/internal/repository"
	"github.com/unionlaw/lawfirm/internal/storage"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

type testServices struct {
	repos        *repository.Repositories
	uploadDir    string
	tokens       *TokenService
	auth         *AuthService
	users        *UserService
	cases        *CaseService
	appointments *AppointmentService
	videos       *VideoService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	database, err := db.Init(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(database.DB, db.DriverSQLite))

	repos := repository.NewRepositories(database)
	t.Cleanup(func() { _ = repos.Close() })

	uploadDir := filepath.Join(t.TempDir(), "uploads")
	store, err := storage.NewLocalStorage(uploadDir, "http://localhost/uploads")
	require.NoError(t, err)

	email := NewEmailService("", "noreply@example.com", "http://localhost", "Union Law Firm", true)
	tokens := NewTokenService(testSecret, 30*time.Minute)

	return &testServices{
		repos:        repos,
		uploadDir:    uploadDir,
		tokens:       tokens,
		auth:         NewAuthService(repos.Users, tokens, email),
		users:        NewUserService(repos.Users),
		cases:        NewCaseService(repos.Cases, repos.Users, NewFileService(store), email),
		appointments: NewAppointmentService(repos.Appointments, 100.0),
		videos:       NewVideoService(repos.Videos),
	}
}

// uploads builds parsed multipart file headers from name/content pairs.
func uploads(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}
