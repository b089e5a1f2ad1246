package repositories

import (
	"context"
	"strings"

	"innstay/internal/domain/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

var bookingColumns = []string{
	"id", "user_id", "hotel_id", "room_id", "check_in", "check_out",
	"guests", "total_price", "status", "created_at", "updated_at",
}

type BookingFilter struct {
	UserID  int64
	HotelID int64
	Status  string
	Limit   uint
}

type BookingRepository struct {
	DB *sqlx.DB
}

func (r BookingRepository) table() table[models.BookingRow] {
	return table[models.BookingRow]{
		db:       r.DB,
		name:     "bookings",
		resource: "booking",
		columns:  bookingColumns,
		record:   bookingRecord,
	}
}

func bookingRecord(b models.BookingRow) goqu.Record {
	return goqu.Record{
		"user_id":     b.UserID,
		"hotel_id":    b.HotelID,
		"room_id":     b.RoomID,
		"check_in":    b.CheckIn,
		"check_out":   b.CheckOut,
		"guests":      b.Guests,
		"total_price": b.TotalPrice,
		"status":      b.Status,
	}
}

func (r BookingRepository) List(ctx context.Context, f BookingFilter) ([]models.BookingRow, error) {
	where := []exp.Expression{}
	if f.UserID > 0 {
		where = append(where, goqu.C("user_id").Eq(f.UserID))
	}
	if f.HotelID > 0 {
		where = append(where, goqu.C("hotel_id").Eq(f.HotelID))
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, goqu.C("status").Eq(s))
	}
	return r.table().list(ctx, where, f.Limit)
}

func (r BookingRepository) Get(ctx context.Context, id int64) (models.BookingRow, error) {
	return r.table().get(ctx, id)
}

func (r BookingRepository) Create(ctx context.Context, row models.BookingRow) (models.BookingRow, error) {
	return r.table().create(ctx, row)
}

func (r BookingRepository) Update(ctx context.Context, id int64, mutate func(*models.BookingRow) error) (models.BookingRow, error) {
	return r.table().update(ctx, id, mutate)
}

func (r BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.table().delete(ctx, id)
}
