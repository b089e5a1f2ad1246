package repositories

import (
	"context"

	"innstay/internal/domain/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

var reviewColumns = []string{
	"id", "booking_id", "hotel_id", "user_id", "rating", "title", "comment",
	"cleanliness", "service", "value", "is_verified", "created_at", "updated_at",
}

type ReviewFilter struct {
	HotelID   int64
	UserID    int64
	BookingID int64
	Limit     uint
}

type ReviewRepository struct {
	DB *sqlx.DB
}

func (r ReviewRepository) table() table[models.ReviewRow] {
	return table[models.ReviewRow]{
		db:       r.DB,
		name:     "reviews",
		resource: "review",
		columns:  reviewColumns,
		record:   reviewRecord,
	}
}

func reviewRecord(rv models.ReviewRow) goqu.Record {
	return goqu.Record{
		"booking_id":  rv.BookingID,
		"hotel_id":    rv.HotelID,
		"user_id":     rv.UserID,
		"rating":      rv.Rating,
		"title":       rv.Title,
		"comment":     rv.Comment,
		"cleanliness": rv.Cleanliness,
		"service":     rv.Service,
		"value":       rv.Value,
		"is_verified": rv.Verified,
	}
}

func (r ReviewRepository) List(ctx context.Context, f ReviewFilter) ([]models.ReviewRow, error) {
	where := []exp.Expression{}
	if f.HotelID > 0 {
		where = append(where, goqu.C("hotel_id").Eq(f.HotelID))
	}
	if f.UserID > 0 {
		where = append(where, goqu.C("user_id").Eq(f.UserID))
	}
	if f.BookingID > 0 {
		where = append(where, goqu.C("booking_id").Eq(f.BookingID))
	}
	return r.table().list(ctx, where, f.Limit)
}

func (r ReviewRepository) Get(ctx context.Context, id int64) (models.ReviewRow, error) {
	return r.table().get(ctx, id)
}

func (r ReviewRepository) Create(ctx context.Context, row models.ReviewRow) (models.ReviewRow, error) {
	return r.table().create(ctx, row)
}

func (r ReviewRepository) Update(ctx context.Context, id int64, mutate func(*models.ReviewRow) error) (models.ReviewRow, error) {
	return r.table().update(ctx, id, mutate)
}

func (r ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.table().delete(ctx, id)
}
