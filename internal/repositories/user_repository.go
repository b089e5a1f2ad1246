package repositories

import (
	"context"
	"strings"

	"innstay/internal/domain/models"
	"innstay/internal/utils"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

// EmailTakenMsg is reported for any duplicate email, whether caught by the
// pre-check or by the unique index.
const EmailTakenMsg = "Email already registered"

var userColumns = []string{
	"id", "name", "email", "password_hash", "phone", "role", "is_active",
	"created_at", "updated_at",
}

type UserFilter struct {
	Role  string
	Query string
	Limit uint
}

type UserRepository struct {
	DB *sqlx.DB
}

func (r UserRepository) table() table[models.User] {
	return table[models.User]{
		db:          r.DB,
		name:        "users",
		resource:    "user",
		columns:     userColumns,
		conflictMsg: EmailTakenMsg,
		record:      userRecord,
	}
}

func userRecord(u models.User) goqu.Record {
	return goqu.Record{
		"name":          u.Name,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"phone":         u.Phone,
		"role":          string(u.Role),
		"is_active":     u.Active,
	}
}

func (r UserRepository) List(ctx context.Context, f UserFilter) ([]models.User, error) {
	where := []exp.Expression{}
	if role := strings.ToLower(strings.TrimSpace(f.Role)); role != "" {
		where = append(where, goqu.C("role").Eq(role))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		like := "%" + q + "%"
		where = append(where, goqu.Or(goqu.C("name").Like(like), goqu.C("email").Like(like)))
	}
	return r.table().list(ctx, where, f.Limit)
}

func (r UserRepository) Get(ctx context.Context, id int64) (models.User, error) {
	return r.table().get(ctx, id)
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	t := r.table()
	return t.getBy(ctx, t.db, goqu.C("email").Eq(utils.NormalizeEmail(email)), false)
}

func (r UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	return r.table().create(ctx, u)
}

func (r UserRepository) Update(ctx context.Context, id int64, mutate func(*models.User) error) (models.User, error) {
	return r.table().update(ctx, id, mutate)
}

func (r UserRepository) Delete(ctx context.Context, id int64) error {
	return r.table().delete(ctx, id)
}
