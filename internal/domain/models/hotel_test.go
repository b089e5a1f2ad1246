package models

import (
	"database/sql"
	"testing"

	"innstay/internal/domain"
	"innstay/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func listPtr(s ...string) *utils.StringList {
	l := utils.StringList(s)
	return &l
}

func TestHotelApplyNewHotelWithLocation(t *testing.T) {
	row := NewHotelRow()
	err := row.Apply(HotelInput{
		Name:     strPtr("Test Inn"),
		Location: strPtr("Austin, TX, USA"),
		Price:    floatPtr(100),
	})
	require.NoError(t, err)

	h := row.ToView()
	assert.Equal(t, "Test Inn", h.Name)
	assert.Equal(t, "Test Inn", h.Title)
	assert.Equal(t, "Austin, TX, USA", h.Location)
	assert.Equal(t, "Austin", h.City)
	assert.Equal(t, 100.0, h.Price)
	assert.Equal(t, []string{}, h.Images)
	assert.Equal(t, 4.5, h.Rating)
	assert.Equal(t, "Active", h.Status)
	assert.True(t, h.Active)
	assert.Equal(t, "3pm", h.CheckIn)
	assert.Equal(t, "11am", h.CheckOut)
}

func TestHotelApplyNameRequired(t *testing.T) {
	row := NewHotelRow()
	err := row.Apply(HotelInput{Price: floatPtr(10)})
	assert.True(t, domain.IsValidation(err))

	row = NewHotelRow()
	err = row.Apply(HotelInput{Name: strPtr("   ")})
	assert.True(t, domain.IsValidation(err))
}

func TestHotelApplyTitleAlias(t *testing.T) {
	row := NewHotelRow()
	require.NoError(t, row.Apply(HotelInput{Title: strPtr("Loft")}))
	assert.Equal(t, "Loft", row.Name)
}

func TestHotelApplyRejectsBadNumbers(t *testing.T) {
	row := HotelRow{Name: "X"}
	assert.True(t, domain.IsValidation(row.Apply(HotelInput{Price: floatPtr(-1)})))
	assert.True(t, domain.IsValidation(row.Apply(HotelInput{Rating: floatPtr(7)})))
	assert.True(t, domain.IsValidation(row.Apply(HotelInput{Beds: intPtr(-2)})))
}

func TestHotelApplyOmittedFieldsUntouched(t *testing.T) {
	row := HotelRow{
		ID:        7,
		Name:      "Harbor View",
		City:      sql.NullString{String: "Boston", Valid: true},
		Price:     sql.NullFloat64{Float64: 220, Valid: true},
		Amenities: sql.NullString{String: `["Wifi","Pool"]`, Valid: true},
		Status:    "Active",
		Active:    true,
	}

	require.NoError(t, row.Apply(HotelInput{Price: floatPtr(199)}))

	h := row.ToView()
	assert.Equal(t, "Harbor View", h.Name)
	assert.Equal(t, "Boston", h.City)
	assert.Equal(t, 199.0, h.Price)
	assert.Equal(t, []string{"Wifi", "Pool"}, h.Amenities)
	assert.True(t, h.Active)
}

func TestHotelExplicitPartsOverrideLocation(t *testing.T) {
	row := NewHotelRow()
	require.NoError(t, row.Apply(HotelInput{
		Name:     strPtr("Inn"),
		Location: strPtr("Austin, TX, USA"),
		State:    strPtr("Texas"),
	}))
	assert.Equal(t, "Austin, Texas, USA", row.ToView().Location)
}

func TestHotelListsRoundTripInOrder(t *testing.T) {
	row := NewHotelRow()
	require.NoError(t, row.Apply(HotelInput{
		Name:      strPtr("Inn"),
		Image:     strPtr("/uploads/a.jpg"),
		Images:    listPtr("/uploads/b.jpg", "/uploads/a.jpg", "/uploads/c.jpg"),
		Amenities: listPtr("Pool", "Wifi", "Gym"),
	}))

	h := row.ToView()
	assert.Equal(t, []string{"/uploads/b.jpg", "/uploads/a.jpg", "/uploads/c.jpg"}, h.Images)
	assert.Equal(t, []string{"Pool", "Wifi", "Gym"}, h.Amenities)
}

func TestHotelListsKeepPaddedAndEmptyItems(t *testing.T) {
	row := NewHotelRow()
	require.NoError(t, row.Apply(HotelInput{
		Name:      strPtr("Inn"),
		Images:    listPtr("/uploads/a.jpg", "", " /uploads/b.jpg"),
		Amenities: listPtr(" Pool", "", "Wi-Fi "),
	}))

	h := row.ToView()
	assert.Equal(t, []string{"/uploads/a.jpg", "", " /uploads/b.jpg"}, h.Images)
	assert.Equal(t, []string{" Pool", "", "Wi-Fi "}, h.Amenities)
}

func TestHotelViewSynthesizesGalleryFromPrimaryImage(t *testing.T) {
	row := HotelRow{Name: "Inn", ImageURL: sql.NullString{String: "/uploads/a.jpg", Valid: true}}
	h := row.ToView()
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/a.jpg", "/uploads/a.jpg"}, h.Images)
}

func TestHotelViewLegacyCommaListAndPrimaryFromGallery(t *testing.T) {
	row := HotelRow{
		Name:      "Inn",
		Images:    sql.NullString{String: "/a.jpg, /b.jpg", Valid: true},
		Amenities: sql.NullString{String: "Wifi,Parking", Valid: true},
		Rating:    sql.NullFloat64{Float64: 4.9, Valid: true},
	}
	h := row.ToView()
	assert.Equal(t, "/a.jpg", h.Image)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, h.Images)
	assert.Equal(t, []string{"Wifi", "Parking"}, h.Amenities)
	assert.Equal(t, 4.9, h.Rating)
}

func TestHotelApplyClearsListWithEmptyArray(t *testing.T) {
	row := HotelRow{Name: "Inn", Amenities: sql.NullString{String: `["Wifi"]`, Valid: true}}
	require.NoError(t, row.Apply(HotelInput{Amenities: listPtr()}))
	assert.False(t, row.Amenities.Valid)
	assert.Equal(t, []string{}, row.ToView().Amenities)
}
