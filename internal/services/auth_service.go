package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"innstay/internal/domain"
	"innstay/internal/domain/models"
	"innstay/internal/repositories"
	"innstay/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const (
	invalidCredentialsMsg = "Invalid email or password"
	unauthorizedMsg       = "Unauthorized"
)

// ErrInvalidCredentials is returned for any failed login, whatever the cause.
var ErrInvalidCredentials = domain.UnauthorizedError{Msg: invalidCredentialsMsg}

// UserStore is the user persistence the auth flow depends on.
type UserStore interface {
	Get(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AuthService struct {
	Users    UserStore
	Tokens   *TokenService
	HashCost int

	dummyOnce sync.Once
	dummyHash []byte
}

func (s *AuthService) cost() int {
	if s.HashCost == 0 {
		return bcrypt.DefaultCost
	}
	return s.HashCost
}

// HashPassword hashes a plain password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", domain.ValidationError{Field: "password", Msg: "is required"}
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Register creates a regular user and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	u := models.User{Role: domain.RoleUser, Active: true}
	if err := u.Apply(models.UserInput{Name: &in.Name, Email: &in.Email, Phone: &in.Phone}); err != nil {
		return models.User{}, "", err
	}
	if in.Password == "" {
		return models.User{}, "", domain.ValidationError{Field: "password", Msg: "is required"}
	}

	if _, err := s.Users.GetByEmail(ctx, u.Email); err == nil {
		return models.User{}, "", domain.ConflictError{Msg: repositories.EmailTakenMsg}
	} else if !domain.IsNotFound(err) {
		return models.User{}, "", err
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return models.User{}, "", err
	}
	u.PasswordHash = hash

	created, err := s.Users.Create(ctx, u)
	if err != nil {
		return models.User{}, "", err
	}
	token, err := s.Tokens.Issue(created)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return created, token, nil
}

// Login verifies credentials. Unknown email, inactive account and wrong
// password all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, "", domain.ValidationError{Msg: "Email and password are required"}
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if !domain.IsNotFound(err) {
			return models.User{}, "", err
		}
		// keep timing similar to the found-user path
		_ = bcrypt.CompareHashAndPassword(s.fakeHash(), []byte(password))
		return models.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil || !u.Active {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(u)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Authenticate resolves the user behind an Authorization header. The user is
// re-read so deactivated or deleted accounts lose access immediately.
func (s *AuthService) Authenticate(ctx context.Context, header string, roles ...domain.Role) (models.User, error) {
	raw, err := BearerToken(header)
	if err != nil {
		return models.User{}, domain.UnauthorizedError{Msg: unauthorizedMsg, Err: err}
	}
	claims, err := s.Tokens.Validate(raw)
	if err != nil {
		return models.User{}, domain.UnauthorizedError{Msg: unauthorizedMsg, Err: err}
	}

	u, err := s.Users.Get(ctx, claims.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.UnauthorizedError{Msg: unauthorizedMsg, Err: err}
		}
		return models.User{}, err
	}
	if !u.Active {
		return models.User{}, domain.UnauthorizedError{Msg: unauthorizedMsg, Err: errors.New("inactive user")}
	}
	if len(roles) > 0 && !slices.Contains(roles, u.Role) {
		return models.User{}, domain.UnauthorizedError{Msg: unauthorizedMsg, Err: errors.New("role not allowed")}
	}
	return u, nil
}

// SeedAdmin creates an admin account when the email is not registered yet.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return false, nil
	} else if !domain.IsNotFound(err) {
		return false, err
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return false, err
	}
	u := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if u.Name == "" {
		u.Name = "Administrator"
	}
	if _, err := s.Users.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AuthService) fakeHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("innstay-placeholder"), s.cost())
	})
	return s.dummyHash
}
