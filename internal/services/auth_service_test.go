package services

import (
	"context"
	"testing"
	"time"

	"innstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(users *memUsers) *AuthService {
	return &AuthService{
		Users:    users,
		Tokens:   NewTokenService("test-secret", time.Hour),
		HashCost: bcrypt.MinCost,
	}
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	auth := newAuth(newMemUsers())

	u, tok, err := auth.Register(ctx, RegisterInput{Name: " Ana  Lee ", Email: "Ana@Example.com", Password: "pw123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, "Ana Lee", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)
	assert.NotEqual(t, "pw123", u.PasswordHash)

	logged, tok2, err := auth.Login(ctx, "ANA@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := auth.Tokens.Validate(tok2)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth := newAuth(newMemUsers())

	_, _, err := auth.Register(ctx, RegisterInput{Name: "A", Email: "a@x.io", Password: "p"})
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, RegisterInput{Name: "B", Email: "A@X.io", Password: "q"})
	require.True(t, domain.IsConflict(err))
	assert.Equal(t, "Email already registered", err.Error())
}

func TestRegisterValidation(t *testing.T) {
	auth := newAuth(newMemUsers())
	_, _, err := auth.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.io"})
	assert.True(t, domain.IsValidation(err))

	_, _, err = auth.Register(context.Background(), RegisterInput{Name: "A", Email: "nope", Password: "p"})
	assert.True(t, domain.IsValidation(err))
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	auth := newAuth(users)

	u, _, err := auth.Register(ctx, RegisterInput{Name: "A", Email: "a@x.io", Password: "right"})
	require.NoError(t, err)

	_, _, errWrong := auth.Login(ctx, "a@x.io", "wrong")
	_, _, errMissing := auth.Login(ctx, "ghost@x.io", "right")

	u.Active = false
	users.rows[u.ID] = u
	_, _, errInactive := auth.Login(ctx, "a@x.io", "right")

	for _, err := range []error{errWrong, errMissing, errInactive} {
		require.True(t, domain.IsUnauthorized(err))
		assert.Equal(t, "Invalid email or password", err.Error())
	}

	_, _, err = auth.Login(ctx, "", "")
	assert.True(t, domain.IsValidation(err))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	auth := newAuth(users)

	u, tok, err := auth.Register(ctx, RegisterInput{Name: "A", Email: "a@x.io", Password: "p"})
	require.NoError(t, err)

	got, err := auth.Authenticate(ctx, "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = auth.Authenticate(ctx, "Bearer "+tok, domain.RoleAdmin)
	assert.True(t, domain.IsUnauthorized(err))

	_, err = auth.Authenticate(ctx, "")
	assert.True(t, domain.IsUnauthorized(err))

	_, err = auth.Authenticate(ctx, "Bearer garbage")
	assert.True(t, domain.IsUnauthorized(err))

	require.NoError(t, users.Delete(ctx, u.ID))
	_, err = auth.Authenticate(ctx, "Bearer "+tok)
	assert.True(t, domain.IsUnauthorized(err))
}

func TestAuthenticateExpiredToken(t *testing.T) {
	ctx := context.Background()
	auth := newAuth(newMemUsers())
	now := time.Now()
	auth.Tokens.now = func() time.Time { return now }

	_, tok, err := auth.Register(ctx, RegisterInput{Name: "A", Email: "a@x.io", Password: "p"})
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = auth.Authenticate(ctx, "Bearer "+tok)
	require.True(t, domain.IsUnauthorized(err))
	assert.Equal(t, "Unauthorized", err.Error())
}

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	auth := newAuth(users)

	created, err := auth.SeedAdmin(ctx, "", "Admin@InnStay.io", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	again, err := auth.SeedAdmin(ctx, "Other", "admin@innstay.io", "x")
	require.NoError(t, err)
	assert.False(t, again)

	admin, err := users.GetByEmail(ctx, "admin@innstay.io")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, "Administrator", admin.Name)

	_, tok, err := auth.Login(ctx, "admin@innstay.io", "admin123")
	require.NoError(t, err)
	_, err = auth.Authenticate(ctx, "Bearer "+tok, domain.RoleAdmin)
	assert.NoError(t, err)

	skipped, err := auth.SeedAdmin(ctx, "A", "", "")
	require.NoError(t, err)
	assert.False(t, skipped)
}
