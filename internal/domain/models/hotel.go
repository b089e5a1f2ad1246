package models

import (
	"database/sql"
	"strings"
	"time"

	"innstay/internal/domain"
	"innstay/internal/utils"
)

const (
	DefaultHotelStatus   = "Active"
	DefaultHotelRating   = 4.5
	DefaultCheckInTime   = "3pm"
	DefaultCheckOutTime  = "11am"
	syntheticGallerySize = 3
)

// HotelRow mirrors the hotels table.
type HotelRow struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	Description  sql.NullString  `db:"description"`
	City         sql.NullString  `db:"city"`
	State        sql.NullString  `db:"state"`
	Country      sql.NullString  `db:"country"`
	Price        sql.NullFloat64 `db:"price"`
	Rating       sql.NullFloat64 `db:"rating"`
	ReviewCount  sql.NullInt64   `db:"review_count"`
	ImageURL     sql.NullString  `db:"image_url"`
	Images       sql.NullString  `db:"images"`
	Amenities    sql.NullString  `db:"amenities"`
	Bedrooms     sql.NullInt64   `db:"bedrooms"`
	Beds         sql.NullInt64   `db:"beds"`
	Bathrooms    sql.NullInt64   `db:"bathrooms"`
	MaxGuests    sql.NullInt64   `db:"max_guests"`
	Status       string          `db:"status"`
	Active       bool            `db:"is_active"`
	CheckInTime  sql.NullString  `db:"check_in_time"`
	CheckOutTime sql.NullString  `db:"check_out_time"`
	HostName     sql.NullString  `db:"host_name"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Hotel is the shape served to the storefront and the admin panel.
type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Reviews     int64     `json:"reviews"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	Amenities   []string  `json:"amenities"`
	Bedrooms    int64     `json:"bedrooms"`
	Beds        int64     `json:"beds"`
	Bathrooms   int64     `json:"bathrooms"`
	Guests      int64     `json:"guests"`
	Status      string    `json:"status"`
	Active      bool      `json:"active"`
	CheckIn     string    `json:"checkIn"`
	CheckOut    string    `json:"checkOut"`
	HostName    string    `json:"hostName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HotelInput is the create/update payload. Nil fields keep their stored value.
type HotelInput struct {
	Name        *string           `json:"name"`
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Location    *string           `json:"location"`
	City        *string           `json:"city"`
	State       *string           `json:"state"`
	Country     *string           `json:"country"`
	Price       *float64          `json:"price"`
	Rating      *float64          `json:"rating"`
	Reviews     *int              `json:"reviews"`
	Image       *string           `json:"image"`
	Images      *utils.StringList `json:"images"`
	Amenities   *utils.StringList `json:"amenities"`
	Bedrooms    *int              `json:"bedrooms"`
	Beds        *int              `json:"beds"`
	Bathrooms   *int              `json:"bathrooms"`
	Guests      *int              `json:"guests"`
	Status      *string           `json:"status"`
	Active      *bool             `json:"active"`
	CheckIn     *string           `json:"checkIn"`
	CheckOut    *string           `json:"checkOut"`
	HostName    *string           `json:"hostName"`
}

// NewHotelRow returns a row carrying the column defaults.
func NewHotelRow() HotelRow {
	return HotelRow{Status: DefaultHotelStatus, Active: true}
}

func (r HotelRow) ToView() Hotel {
	h := Hotel{
		ID:          r.ID,
		Name:        r.Name,
		Title:       r.Name,
		Description: r.Description.String,
		Location:    utils.JoinLocation(r.City.String, r.State.String, r.Country.String),
		City:        r.City.String,
		State:       r.State.String,
		Country:     r.Country.String,
		Price:       r.Price.Float64,
		Rating:      DefaultHotelRating,
		Reviews:     r.ReviewCount.Int64,
		Image:       r.ImageURL.String,
		Images:      utils.ParseList(r.Images.String),
		Amenities:   utils.ParseList(r.Amenities.String),
		Bedrooms:    r.Bedrooms.Int64,
		Beds:        r.Beds.Int64,
		Bathrooms:   r.Bathrooms.Int64,
		Guests:      r.MaxGuests.Int64,
		Status:      r.Status,
		Active:      r.Active,
		CheckIn:     r.CheckInTime.String,
		CheckOut:    r.CheckOutTime.String,
		HostName:    r.HostName.String,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Rating.Valid {
		h.Rating = r.Rating.Float64
	}
	if h.Status == "" {
		h.Status = DefaultHotelStatus
	}
	if h.CheckIn == "" {
		h.CheckIn = DefaultCheckInTime
	}
	if h.CheckOut == "" {
		h.CheckOut = DefaultCheckOutTime
	}
	// The storefront gallery expects several slides even for single-image listings.
	if len(h.Images) == 0 && h.Image != "" {
		h.Images = make([]string, syntheticGallerySize)
		for i := range h.Images {
			h.Images[i] = h.Image
		}
	}
	if h.Image == "" && len(h.Images) > 0 {
		h.Image = h.Images[0]
	}
	return h
}

// Apply copies the present fields of in onto r and validates the result.
func (r *HotelRow) Apply(in HotelInput) error {
	name := in.Name
	if name == nil {
		name = in.Title
	}
	if name != nil {
		r.Name = utils.NormalizeSpace(*name)
	}
	if in.Description != nil {
		r.Description = utils.NullIfEmpty(*in.Description)
	}
	if in.Location != nil {
		city, state, country := utils.SplitLocation(*in.Location)
		r.City = utils.NullIfEmpty(city)
		r.State = utils.NullIfEmpty(state)
		r.Country = utils.NullIfEmpty(country)
	}
	if in.City != nil {
		r.City = utils.NullIfEmpty(*in.City)
	}
	if in.State != nil {
		r.State = utils.NullIfEmpty(*in.State)
	}
	if in.Country != nil {
		r.Country = utils.NullIfEmpty(*in.Country)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return domain.ValidationError{Field: "price", Msg: "must not be negative"}
		}
		r.Price = utils.NullFloat(*in.Price)
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return domain.ValidationError{Field: "rating", Msg: "must be between 0 and 5"}
		}
		r.Rating = utils.NullFloat(*in.Rating)
	}
	if in.Image != nil {
		r.ImageURL = utils.NullIfEmpty(*in.Image)
	}
	if in.Images != nil {
		r.Images = utils.NullIfEmpty(utils.EncodeList(*in.Images))
	}
	if in.Amenities != nil {
		r.Amenities = utils.NullIfEmpty(utils.EncodeList(*in.Amenities))
	}
	counts := []struct {
		field string
		in    *int
		dst   *sql.NullInt64
	}{
		{"reviews", in.Reviews, &r.ReviewCount},
		{"bedrooms", in.Bedrooms, &r.Bedrooms},
		{"beds", in.Beds, &r.Beds},
		{"bathrooms", in.Bathrooms, &r.Bathrooms},
		{"guests", in.Guests, &r.MaxGuests},
	}
	for _, c := range counts {
		if c.in == nil {
			continue
		}
		if *c.in < 0 {
			return domain.ValidationError{Field: c.field, Msg: "must not be negative"}
		}
		*c.dst = utils.NullInt(*c.in)
	}
	if in.Status != nil {
		r.Status = strings.TrimSpace(*in.Status)
		if r.Status == "" {
			r.Status = DefaultHotelStatus
		}
	}
	if in.Active != nil {
		r.Active = *in.Active
	}
	if in.CheckIn != nil {
		r.CheckInTime = utils.NullIfEmpty(*in.CheckIn)
	}
	if in.CheckOut != nil {
		r.CheckOutTime = utils.NullIfEmpty(*in.CheckOut)
	}
	if in.HostName != nil {
		r.HostName = utils.NullIfEmpty(*in.HostName)
	}

	if r.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "is required"}
	}
	return nil
}
