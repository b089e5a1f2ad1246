package models

import (
	"database/sql"
	"math"
	"strings"
	"time"

	"innstay/internal/domain"
	"innstay/internal/utils"
)

const DefaultBookingStatus = "pending"

type BookingRow struct {
	ID         int64         `db:"id"`
	UserID     int64         `db:"user_id"`
	HotelID    int64         `db:"hotel_id"`
	RoomID     sql.NullInt64 `db:"room_id"`
	CheckIn    time.Time     `db:"check_in"`
	CheckOut   time.Time     `db:"check_out"`
	Guests     int           `db:"guests"`
	TotalPrice float64       `db:"total_price"`
	Status     string        `db:"status"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

type Booking struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	HotelID    int64     `json:"hotelId"`
	RoomID     *int64    `json:"roomId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Nights     int       `json:"nights"`
	Guests     int       `json:"guests"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingInput struct {
	UserID     *int64   `json:"userId"`
	HotelID    *int64   `json:"hotelId"`
	RoomID     *int64   `json:"roomId"`
	CheckIn    *string  `json:"checkIn"`
	CheckOut   *string  `json:"checkOut"`
	Guests     *int     `json:"guests"`
	TotalPrice *float64 `json:"totalPrice"`
	Status     *string  `json:"status"`
}

func NewBookingRow() BookingRow {
	return BookingRow{Guests: 1, Status: DefaultBookingStatus}
}

func (r BookingRow) ToView() Booking {
	b := Booking{
		ID:         r.ID,
		UserID:     r.UserID,
		HotelID:    r.HotelID,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.RoomID.Valid {
		id := r.RoomID.Int64
		b.RoomID = &id
	}
	if !r.CheckIn.IsZero() {
		b.CheckIn = utils.FormatDate(r.CheckIn)
	}
	if !r.CheckOut.IsZero() {
		b.CheckOut = utils.FormatDate(r.CheckOut)
	}
	if !r.CheckIn.IsZero() && r.CheckOut.After(r.CheckIn) {
		b.Nights = int(math.Round(r.CheckOut.Sub(r.CheckIn).Hours() / 24))
	}
	return b
}

// Apply copies the present fields of in onto r and validates the result.
func (r *BookingRow) Apply(in BookingInput) error {
	if in.UserID != nil {
		r.UserID = *in.UserID
	}
	if in.HotelID != nil {
		r.HotelID = *in.HotelID
	}
	if in.RoomID != nil {
		r.RoomID = sql.NullInt64{Int64: *in.RoomID, Valid: *in.RoomID > 0}
	}
	if in.CheckIn != nil {
		t, err := utils.ParseDate(*in.CheckIn)
		if err != nil {
			return domain.ValidationError{Field: "checkIn", Msg: "must be YYYY-MM-DD", Err: err}
		}
		r.CheckIn = t
	}
	if in.CheckOut != nil {
		t, err := utils.ParseDate(*in.CheckOut)
		if err != nil {
			return domain.ValidationError{Field: "checkOut", Msg: "must be YYYY-MM-DD", Err: err}
		}
		r.CheckOut = t
	}
	if in.Guests != nil {
		r.Guests = *in.Guests
	}
	if in.TotalPrice != nil {
		r.TotalPrice = *in.TotalPrice
	}
	if in.Status != nil {
		r.Status = strings.TrimSpace(*in.Status)
		if r.Status == "" {
			r.Status = DefaultBookingStatus
		}
	}
	return r.Validate()
}

func (r *BookingRow) Validate() error {
	switch {
	case r.UserID <= 0:
		return domain.ValidationError{Field: "userId", Msg: "is required"}
	case r.HotelID <= 0:
		return domain.ValidationError{Field: "hotelId", Msg: "is required"}
	case r.CheckIn.IsZero():
		return domain.ValidationError{Field: "checkIn", Msg: "is required"}
	case r.CheckOut.IsZero():
		return domain.ValidationError{Field: "checkOut", Msg: "is required"}
	case !r.CheckOut.After(r.CheckIn):
		return domain.ValidationError{Field: "checkOut", Msg: "must be after checkIn"}
	case r.Guests < 1:
		return domain.ValidationError{Field: "guests", Msg: "must be at least 1"}
	case r.TotalPrice < 0:
		return domain.ValidationError{Field: "totalPrice", Msg: "must not be negative"}
	}
	return nil
}
