package repositories

import (
	"context"
	"strings"

	"innstay/internal/domain/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

var hotelColumns = []string{
	"id", "name", "description", "city", "state", "country",
	"price", "rating", "review_count", "image_url", "images", "amenities",
	"bedrooms", "beds", "bathrooms", "max_guests",
	"status", "is_active", "check_in_time", "check_out_time", "host_name",
	"created_at", "updated_at",
}

type HotelFilter struct {
	Status     string
	ActiveOnly bool
	Query      string
	Limit      uint
}

type HotelRepository struct {
	DB *sqlx.DB
}

func (r HotelRepository) table() table[models.HotelRow] {
	return table[models.HotelRow]{
		db:       r.DB,
		name:     "hotels",
		resource: "hotel",
		columns:  hotelColumns,
		record:   hotelRecord,
	}
}

func hotelRecord(h models.HotelRow) goqu.Record {
	return goqu.Record{
		"name":           h.Name,
		"description":    h.Description,
		"city":           h.City,
		"state":          h.State,
		"country":        h.Country,
		"price":          h.Price,
		"rating":         h.Rating,
		"review_count":   h.ReviewCount,
		"image_url":      h.ImageURL,
		"images":         h.Images,
		"amenities":      h.Amenities,
		"bedrooms":       h.Bedrooms,
		"beds":           h.Beds,
		"bathrooms":      h.Bathrooms,
		"max_guests":     h.MaxGuests,
		"status":         h.Status,
		"is_active":      h.Active,
		"check_in_time":  h.CheckInTime,
		"check_out_time": h.CheckOutTime,
		"host_name":      h.HostName,
	}
}

func (r HotelRepository) List(ctx context.Context, f HotelFilter) ([]models.HotelRow, error) {
	where := []exp.Expression{}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, goqu.C("status").Eq(s))
	}
	if f.ActiveOnly {
		where = append(where, goqu.C("is_active").IsTrue())
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		like := "%" + q + "%"
		where = append(where, goqu.Or(
			goqu.C("name").Like(like),
			goqu.C("city").Like(like),
			goqu.C("country").Like(like),
		))
	}
	return r.table().list(ctx, where, f.Limit)
}

func (r HotelRepository) Get(ctx context.Context, id int64) (models.HotelRow, error) {
	return r.table().get(ctx, id)
}

func (r HotelRepository) Create(ctx context.Context, row models.HotelRow) (models.HotelRow, error) {
	return r.table().create(ctx, row)
}

func (r HotelRepository) Update(ctx context.Context, id int64, mutate func(*models.HotelRow) error) (models.HotelRow, error) {
	return r.table().update(ctx, id, mutate)
}

func (r HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.table().delete(ctx, id)
}
