package services

import (
	"context"
	"fmt"

	"innstay/internal/domain"
	"innstay/internal/domain/models"
	"innstay/internal/repositories"
	"innstay/internal/utils"
)

type UserAdminStore interface {
	UserStore
	List(ctx context.Context, f repositories.UserFilter) ([]models.User, error)
	Update(ctx context.Context, id int64, mutate func(*models.User) error) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type UserService struct {
	Users  UserAdminStore
	Hasher PasswordHasher
}

func (s UserService) List(ctx context.Context, f repositories.UserFilter) ([]models.PublicUser, error) {
	users, err := s.Users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToPublic())
	}
	return out, nil
}

func (s UserService) Get(ctx context.Context, id int64) (models.PublicUser, error) {
	u, err := s.Users.Get(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}
	return u.ToPublic(), nil
}

func (s UserService) Create(ctx context.Context, in models.UserInput) (models.PublicUser, error) {
	u := models.User{Role: domain.RoleUser, Active: true}
	if err := u.Apply(in); err != nil {
		return models.PublicUser{}, err
	}
	if in.Password == nil || *in.Password == "" {
		return models.PublicUser{}, domain.ValidationError{Field: "password", Msg: "is required"}
	}

	if _, err := s.Users.GetByEmail(ctx, u.Email); err == nil {
		return models.PublicUser{}, domain.ConflictError{Msg: repositories.EmailTakenMsg}
	} else if !domain.IsNotFound(err) {
		return models.PublicUser{}, err
	}

	hash, err := s.Hasher.HashPassword(*in.Password)
	if err != nil {
		return models.PublicUser{}, err
	}
	u.PasswordHash = hash

	created, err := s.Users.Create(ctx, u)
	if err != nil {
		return models.PublicUser{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "users", "create", fmt.Sprintf("user_id=%d", created.ID))
	return created.ToPublic(), nil
}

// Update applies a partial change. A non-empty password is re-hashed; an
// empty one is ignored.
func (s UserService) Update(ctx context.Context, id int64, in models.UserInput) (models.PublicUser, error) {
	var hash string
	if in.Password != nil && *in.Password != "" {
		h, err := s.Hasher.HashPassword(*in.Password)
		if err != nil {
			return models.PublicUser{}, err
		}
		hash = h
	}

	updated, err := s.Users.Update(ctx, id, func(u *models.User) error {
		if err := u.Apply(in); err != nil {
			return err
		}
		if hash != "" {
			u.PasswordHash = hash
		}
		return nil
	})
	if err != nil {
		return models.PublicUser{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "users", "update", fmt.Sprintf("user_id=%d", id))
	return updated.ToPublic(), nil
}

func (s UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Users.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "users", "delete", fmt.Sprintf("user_id=%d", id))
	return nil
}
