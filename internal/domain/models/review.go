package models

import (
	"database/sql"
	"time"

	"innstay/internal/domain"
	"innstay/internal/utils"
)

type ReviewRow struct {
	ID          int64          `db:"id"`
	BookingID   sql.NullInt64  `db:"booking_id"`
	HotelID     int64          `db:"hotel_id"`
	UserID      int64          `db:"user_id"`
	Rating      int            `db:"rating"`
	Title       sql.NullString `db:"title"`
	Comment     sql.NullString `db:"comment"`
	Cleanliness sql.NullInt64  `db:"cleanliness"`
	Service     sql.NullInt64  `db:"service"`
	Value       sql.NullInt64  `db:"value"`
	Verified    bool           `db:"is_verified"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type Review struct {
	ID          int64     `json:"id"`
	BookingID   *int64    `json:"bookingId"`
	HotelID     int64     `json:"hotelId"`
	UserID      int64     `json:"userId"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Comment     string    `json:"comment"`
	Cleanliness *int64    `json:"cleanliness"`
	Service     *int64    `json:"service"`
	Value       *int64    `json:"value"`
	Verified    bool      `json:"isVerified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ReviewInput struct {
	BookingID   *int64  `json:"bookingId"`
	HotelID     *int64  `json:"hotelId"`
	UserID      *int64  `json:"userId"`
	Rating      *int    `json:"rating"`
	Title       *string `json:"title"`
	Comment     *string `json:"comment"`
	Cleanliness *int    `json:"cleanliness"`
	Service     *int    `json:"service"`
	Value       *int    `json:"value"`
	Verified    *bool   `json:"isVerified"`
}

func nullableInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func (r ReviewRow) ToView() Review {
	return Review{
		ID:          r.ID,
		BookingID:   nullableInt(r.BookingID),
		HotelID:     r.HotelID,
		UserID:      r.UserID,
		Rating:      r.Rating,
		Title:       r.Title.String,
		Comment:     r.Comment.String,
		Cleanliness: nullableInt(r.Cleanliness),
		Service:     nullableInt(r.Service),
		Value:       nullableInt(r.Value),
		Verified:    r.Verified,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func validScore(field string, v int) error {
	if v < 1 || v > 5 {
		return domain.ValidationError{Field: field, Msg: "must be between 1 and 5"}
	}
	return nil
}

// Apply copies the present fields of in onto r and validates the result.
func (r *ReviewRow) Apply(in ReviewInput) error {
	if in.BookingID != nil {
		r.BookingID = sql.NullInt64{Int64: *in.BookingID, Valid: *in.BookingID > 0}
	}
	if in.HotelID != nil {
		r.HotelID = *in.HotelID
	}
	if in.UserID != nil {
		r.UserID = *in.UserID
	}
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if in.Title != nil {
		r.Title = utils.NullIfEmpty(*in.Title)
	}
	if in.Comment != nil {
		r.Comment = utils.NullIfEmpty(*in.Comment)
	}
	scores := []struct {
		field string
		in    *int
		dst   *sql.NullInt64
	}{
		{"cleanliness", in.Cleanliness, &r.Cleanliness},
		{"service", in.Service, &r.Service},
		{"value", in.Value, &r.Value},
	}
	for _, s := range scores {
		if s.in == nil {
			continue
		}
		if err := validScore(s.field, *s.in); err != nil {
			return err
		}
		*s.dst = utils.NullInt(*s.in)
	}
	if in.Verified != nil {
		r.Verified = *in.Verified
	}

	switch {
	case r.HotelID <= 0:
		return domain.ValidationError{Field: "hotelId", Msg: "is required"}
	case r.UserID <= 0:
		return domain.ValidationError{Field: "userId", Msg: "is required"}
	}
	return validScore("rating", r.Rating)
}
