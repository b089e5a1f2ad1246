package services

import (
	"context"
	"fmt"

	"innstay/internal/domain"
	"innstay/internal/domain/models"
	"innstay/internal/repositories"
	"innstay/internal/utils"
)

type HotelStore interface {
	List(ctx context.Context, f repositories.HotelFilter) ([]models.HotelRow, error)
	Get(ctx context.Context, id int64) (models.HotelRow, error)
	Create(ctx context.Context, row models.HotelRow) (models.HotelRow, error)
	Update(ctx context.Context, id int64, mutate func(*models.HotelRow) error) (models.HotelRow, error)
	Delete(ctx context.Context, id int64) error
}

type HotelService struct {
	Hotels HotelStore
}

func shapeHotels(rows []models.HotelRow) []models.Hotel {
	out := make([]models.Hotel, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToView())
	}
	return out
}

func (s HotelService) List(ctx context.Context, f repositories.HotelFilter) ([]models.Hotel, error) {
	rows, err := s.Hotels.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return shapeHotels(rows), nil
}

// ListPublic returns only hotels flagged active.
func (s HotelService) ListPublic(ctx context.Context, limit uint) ([]models.Hotel, error) {
	return s.List(ctx, repositories.HotelFilter{ActiveOnly: true, Limit: limit})
}

func (s HotelService) Get(ctx context.Context, id int64) (models.Hotel, error) {
	row, err := s.Hotels.Get(ctx, id)
	if err != nil {
		return models.Hotel{}, err
	}
	return row.ToView(), nil
}

// GetPublic hides inactive hotels behind a not-found.
func (s HotelService) GetPublic(ctx context.Context, id int64) (models.Hotel, error) {
	row, err := s.Hotels.Get(ctx, id)
	if err != nil {
		return models.Hotel{}, err
	}
	if !row.Active {
		return models.Hotel{}, domain.NotFoundError{Resource: "hotel"}
	}
	return row.ToView(), nil
}

func (s HotelService) Create(ctx context.Context, in models.HotelInput) (models.Hotel, error) {
	row := models.NewHotelRow()
	if err := row.Apply(in); err != nil {
		return models.Hotel{}, err
	}
	created, err := s.Hotels.Create(ctx, row)
	if err != nil {
		return models.Hotel{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "hotels", "create", fmt.Sprintf("hotel_id=%d", created.ID))
	return created.ToView(), nil
}

func (s HotelService) Update(ctx context.Context, id int64, in models.HotelInput) (models.Hotel, error) {
	updated, err := s.Hotels.Update(ctx, id, func(row *models.HotelRow) error {
		return row.Apply(in)
	})
	if err != nil {
		return models.Hotel{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "hotels", "update", fmt.Sprintf("hotel_id=%d", id))
	return updated.ToView(), nil
}

func (s HotelService) Delete(ctx context.Context, id int64) error {
	if err := s.Hotels.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "hotels", "delete", fmt.Sprintf("hotel_id=%d", id))
	return nil
}
