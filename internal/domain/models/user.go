package models

import (
	"database/sql"
	"strings"
	"time"

	"innstay/internal/domain"
	"innstay/internal/utils"
)

type User struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"` // never sent to clients
	Phone        sql.NullString `db:"phone"`
	Role         domain.Role    `db:"role"`
	Active       bool           `db:"is_active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type PublicUser struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Role      domain.Role `json:"role"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone.String,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserInput is the admin create/update payload. Nil fields are left untouched.
type UserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

// Apply copies the present fields onto u. Password hashing is left to the caller.
func (u *User) Apply(in UserInput) error {
	if in.Name != nil {
		u.Name = utils.NormalizeSpace(*in.Name)
	}
	if in.Email != nil {
		u.Email = utils.NormalizeEmail(*in.Email)
	}
	if in.Phone != nil {
		u.Phone = utils.NullIfEmpty(*in.Phone)
	}
	if in.Role != nil {
		role, err := domain.ParseRole(*in.Role)
		if err != nil {
			return err
		}
		u.Role = role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	return u.Validate()
}

func (u *User) Validate() error {
	if u.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return domain.ValidationError{Field: "email", Msg: "must be a valid address"}
	}
	if !u.Role.Valid() {
		return domain.ValidationError{Field: "role", Msg: "must be user or admin"}
	}
	return nil
}
