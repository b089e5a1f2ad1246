package services

import (
	"context"
	"fmt"

	"innstay/internal/domain/models"
	"innstay/internal/repositories"
	"innstay/internal/utils"
)

type BookingStore interface {
	List(ctx context.Context, f repositories.BookingFilter) ([]models.BookingRow, error)
	Get(ctx context.Context, id int64) (models.BookingRow, error)
	Create(ctx context.Context, row models.BookingRow) (models.BookingRow, error)
	Update(ctx context.Context, id int64, mutate func(*models.BookingRow) error) (models.BookingRow, error)
	Delete(ctx context.Context, id int64) error
}

// BookingService stores bookings as given. User and hotel ids are not
// checked against their tables.
type BookingService struct {
	Bookings BookingStore
}

func (s BookingService) List(ctx context.Context, f repositories.BookingFilter) ([]models.Booking, error) {
	rows, err := s.Bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToView())
	}
	return out, nil
}

func (s BookingService) Get(ctx context.Context, id int64) (models.Booking, error) {
	row, err := s.Bookings.Get(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	return row.ToView(), nil
}

func (s BookingService) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	row := models.NewBookingRow()
	if err := row.Apply(in); err != nil {
		return models.Booking{}, err
	}
	created, err := s.Bookings.Create(ctx, row)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "bookings", "create", fmt.Sprintf("booking_id=%d hotel_id=%d", created.ID, created.HotelID))
	return created.ToView(), nil
}

func (s BookingService) Update(ctx context.Context, id int64, in models.BookingInput) (models.Booking, error) {
	updated, err := s.Bookings.Update(ctx, id, func(row *models.BookingRow) error {
		return row.Apply(in)
	})
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "bookings", "update", fmt.Sprintf("booking_id=%d status=%s", id, updated.Status))
	return updated.ToView(), nil
}

func (s BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.Bookings.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "bookings", "delete", fmt.Sprintf("booking_id=%d", id))
	return nil
}
