package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionlaw/lawfirm/internal/model"
)

func registerClient(t *testing.T, s *testServices, email string) *model.User {
	t.Helper()

	session, err := s.auth.Register(context.Background(), RegisterInput{Email: email, Password: "TestPass123!", Name: "Client " + email})
	require.NoError(t, err)

	user, err := s.repos.Users.ByID(context.Background(), session.User.ID)
	require.NoError(t, err)
	return user
}

func divorceFiling() CaseInput {
	return CaseInput{CaseType: model.CaseTypeDivorce, Title: "Divorce Filing", Description: "Filing for divorce"}
}

func TestSubmitIsOwnerScoped(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := registerClient(t, s, "alice@example.com")
	bob := registerClient(t, s, "bob@example.com")

	c, err := s.cases.Submit(ctx, alice, divorceFiling(), nil)
	require.NoError(t, err)
	assert.Equal(t, model.CaseStatusPending, c.Status)
	assert.Empty(t, c.Files)

	got, err := s.cases.Get(ctx, c.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Divorce Filing", got.Title)

	_, err = s.cases.Get(ctx, c.ID, bob.ID)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	_, err = s.cases.Get(ctx, "missing", alice.ID)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	mine, err := s.cases.ListForOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := s.cases.ListForOwner(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestSubmitValidation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := registerClient(t, s, "alice@example.com")

	for name, in := range map[string]CaseInput{
		"unknown type":  {CaseType: "bankruptcy", Title: "t", Description: "d"},
		"missing title": {CaseType: model.CaseTypeOther, Title: " ", Description: "d"},
		"missing desc":  {CaseType: model.CaseTypeOther, Title: "t", Description: ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.cases.Submit(ctx, alice, in, nil)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestSubmitStoresAttachments(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := registerClient(t, s, "alice@example.com")

	files := uploads(t, map[string][]byte{
		"Marriage Certificate.PDF": []byte("%PDF-1.4\n1 0 obj\n"),
		"notes.txt":                []byte("meeting notes"),
	})

	c, err := s.cases.Submit(ctx, alice, divorceFiling(), files)
	require.NoError(t, err)
	require.Len(t, c.Files, 2)

	for _, name := range c.Files {
		assert.NotContains(t, name, "Marriage")
		assert.True(t, strings.HasSuffix(name, ".PDF") || strings.HasSuffix(name, ".txt"), name)
		_, err := os.Stat(filepath.Join(s.uploadDir, name))
		assert.NoError(t, err)
	}

	got, err := s.cases.Get(ctx, c.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Files, got.Files)
}

func TestSubmitKeepsExtensionCase(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := registerClient(t, s, "alice@example.com")

	c, err := s.cases.Submit(ctx, alice, divorceFiling(), uploads(t, map[string][]byte{
		"CONTRACT.PDF": []byte("%PDF-1.4\n"),
	}))
	require.NoError(t, err)
	require.Len(t, c.Files, 1)
	assert.Equal(t, ".PDF", filepath.Ext(c.Files[0]))
	assert.NotEqual(t, "CONTRACT.PDF", c.Files[0])
}

func TestSubmitRejectsBadAttachmentAndCleansUp(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := registerClient(t, s, "alice@example.com")

	files := uploads(t, map[string][]byte{
		"a.txt":       []byte("fine"),
		"payload.exe": []byte("MZ\x90\x00\x03\x00\x00\x00"),
	})

	_, err := s.cases.Submit(ctx, alice, divorceFiling(), files)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "files", verr.Field)

	entries, err := os.ReadDir(s.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	list, err := s.cases.ListForOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAdminSetStatus(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := registerClient(t, s, "alice@example.com")

	c, err := s.cases.Submit(ctx, alice, divorceFiling(), nil)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.cases.AdminSetStatus(ctx, c.ID, model.CaseStatusUnderReview))

	got, err := s.cases.Get(ctx, c.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CaseStatusUnderReview, got.Status)
	assert.True(t, got.UpdatedAt.After(c.UpdatedAt))
	assert.True(t, got.CreatedAt.Equal(c.CreatedAt))

	// Any status may follow any other, including back to pending.
	require.NoError(t, s.cases.AdminSetStatus(ctx, c.ID, model.CaseStatusCompleted))
	require.NoError(t, s.cases.AdminSetStatus(ctx, c.ID, model.CaseStatusPending))

	err = s.cases.AdminSetStatus(ctx, "missing", model.CaseStatusCompleted)
	assert.ErrorIs(t, err, ErrCaseNotFound)

	err = s.cases.AdminSetStatus(ctx, c.ID, "archived")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAdminListAllJoinsOwners(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := registerClient(t, s, "alice@example.com")

	_, err := s.cases.Submit(ctx, alice, divorceFiling(), nil)
	require.NoError(t, err)

	// A case whose owner record is gone.
	orphan := &model.User{ID: "deleted-user"}
	_, err = s.cases.Submit(ctx, orphan, CaseInput{CaseType: model.CaseTypeCustody, Title: "Custody", Description: "d"}, nil)
	require.NoError(t, err)

	all, err := s.cases.AdminListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byTitle := map[string]*model.AdminCase{}
	for _, c := range all {
		byTitle[c.Title] = c
	}
	assert.Equal(t, alice.Name, byTitle["Divorce Filing"].UserName)
	assert.Equal(t, alice.Email, byTitle["Divorce Filing"].UserEmail)
	assert.Equal(t, UnknownOwner, byTitle["Custody"].UserName)
	assert.Equal(t, UnknownOwner, byTitle["Custody"].UserEmail)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Under Review", label(model.CaseStatusUnderReview))
	assert.Equal(t, "Pending", label(model.CaseStatusPending))

	subject, body := caseStatusEmailTemplate("Alice", "Divorce Filing", model.CaseStatusInProgress, "http://x/dashboard", "Union")
	assert.Contains(t, subject, "In Progress")
	assert.Contains(t, body, "Divorce Filing")
}
