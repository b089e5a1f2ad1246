package services

import (
	"context"
	"fmt"

	"innstay/internal/domain/models"
	"innstay/internal/repositories"
	"innstay/internal/utils"
)

type ReviewStore interface {
	List(ctx context.Context, f repositories.ReviewFilter) ([]models.ReviewRow, error)
	Get(ctx context.Context, id int64) (models.ReviewRow, error)
	Create(ctx context.Context, row models.ReviewRow) (models.ReviewRow, error)
	Update(ctx context.Context, id int64, mutate func(*models.ReviewRow) error) (models.ReviewRow, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewService struct {
	Reviews ReviewStore
}

func (s ReviewService) List(ctx context.Context, f repositories.ReviewFilter) ([]models.Review, error) {
	rows, err := s.Reviews.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]models.Review, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToView())
	}
	return out, nil
}

func (s ReviewService) Get(ctx context.Context, id int64) (models.Review, error) {
	row, err := s.Reviews.Get(ctx, id)
	if err != nil {
		return models.Review{}, err
	}
	return row.ToView(), nil
}

func (s ReviewService) Create(ctx context.Context, in models.ReviewInput) (models.Review, error) {
	var row models.ReviewRow
	if err := row.Apply(in); err != nil {
		return models.Review{}, err
	}
	created, err := s.Reviews.Create(ctx, row)
	if err != nil {
		return models.Review{}, err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "reviews", "create", fmt.Sprintf("review_id=%d hotel_id=%d", created.ID, created.HotelID))
	return created.ToView(), nil
}

func (s ReviewService) Update(ctx context.Context, id int64, in models.ReviewInput) (models.Review, error) {
	updated, err := s.Reviews.Update(ctx, id, func(row *models.ReviewRow) error {
		return row.Apply(in)
	})
	if err != nil {
		return models.Review{}, err
	}
	return updated.ToView(), nil
}

func (s ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.Reviews.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "reviews", "delete", fmt.Sprintf("review_id=%d", id))
	return nil
}
