package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionlaw/lawfirm/internal/model"
)

func TestHashPassword(t *testing.T) {
	first, err := HashPassword("TestPass123!")
	require.NoError(t, err)
	second, err := HashPassword("TestPass123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("TestPass123!", first))
	assert.True(t, CheckPassword("TestPass123!", second))
	assert.False(t, CheckPassword("OtherPass123!", first))
	assert.False(t, CheckPassword("TestPass123!", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("TestPass123!", ""))
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	phone := "+961-1-234567"
	session, err := s.auth.Register(ctx, RegisterInput{
		Email:    "client@example.com",
		Password: "TestPass123!",
		Name:     "Test Client",
		Phone:    &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", session.TokenType)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, model.RoleClient, session.User.Role)
	assert.Equal(t, "Test Client", session.User.Name)

	login, err := s.auth.Login(ctx, "client@example.com", "TestPass123!")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, login.User.ID)

	user, err := s.auth.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	require.NotNil(t, user.Phone)
	assert.Equal(t, phone, *user.Phone)
}

func TestRegisterDuplicateKeepsFirstAccount(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.auth.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "FirstPass123", Name: "First"})
	require.NoError(t, err)

	_, err = s.auth.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "SecondPass123", Name: "Second"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = s.auth.Login(ctx, "dup@example.com", "FirstPass123")
	assert.NoError(t, err)

	_, err = s.auth.Login(ctx, "dup@example.com", "SecondPass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	cases := map[string]RegisterInput{
		"bad email":      {Email: "nope", Password: "TestPass123!", Name: "N"},
		"short password": {Email: "a@example.com", Password: "short", Name: "N"},
		"missing name":   {Email: "a@example.com", Password: "TestPass123!", Name: "  "},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.auth.Register(ctx, in)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestLoginNeverDistinguishesFailures(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.auth.Register(ctx, RegisterInput{Email: "a@example.com", Password: "TestPass123!", Name: "A"})
	require.NoError(t, err)

	_, unknownErr := s.auth.Login(ctx, "ghost@example.com", "TestPass123!")
	_, wrongErr := s.auth.Login(ctx, "a@example.com", "WrongPass123!")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthenticateFailures(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = s.auth.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrMalformedToken)

	expired, err := s.tokens.IssueWithTTL("a@example.com", -time.Second)
	require.NoError(t, err)
	_, err = s.auth.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, ErrExpiredToken)

	// Well-formed token for an account that does not exist.
	ghost, err := s.tokens.Issue("ghost@example.com")
	require.NoError(t, err)
	_, err = s.auth.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, ErrAuthUserNotFound)

	for _, e := range []error{ErrMissingCredentials, ErrMalformedToken, ErrExpiredToken, ErrMissingSubject, ErrAuthUserNotFound} {
		assert.True(t, IsAuthError(e))
	}
	assert.False(t, IsAuthError(ErrForbidden))
}

func TestProvisionAdmin(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	admin, err := s.users.ProvisionAdmin(ctx, "admin@example.com", "AdminPass123!", "Admin", nil)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	session, err := s.auth.Login(ctx, "admin@example.com", "AdminPass123!")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, session.User.Role)

	_, err = s.users.ProvisionAdmin(ctx, "admin@example.com", "AdminPass123!", "Admin", nil)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	got, err := s.repos.Users.ByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
}
