package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"innstay/internal/cache"
	"innstay/internal/clients/amadeus"
	"innstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOffers struct {
	configured bool
	resp       *amadeus.HotelOffersResponse
	err        error
	calls      int
	last       amadeus.SearchParams
}

func (s *stubOffers) Configured() bool { return s.configured }

func (s *stubOffers) SearchHotelOffers(_ context.Context, p amadeus.SearchParams) (*amadeus.HotelOffersResponse, error) {
	s.calls++
	s.last = p
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func parkHotel() amadeus.HotelOffer {
	return amadeus.HotelOffer{
		Hotel: &amadeus.HotelInfo{
			HotelID: "HLNYC001",
			Name:    "Park Hotel",
			Address: &amadeus.Address{CityName: "New York", CountryCode: "US"},
		},
		Offers: []amadeus.Offer{{ID: "o1", Price: amadeus.Price{Currency: "USD", Total: "231.40"}}},
	}
}

func fixedNow() time.Time { return time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC) }

func TestListHotelsUnconfiguredServesFallback(t *testing.T) {
	svc := &SearchService{Offers: &stubOffers{}, Now: fixedNow}

	res := svc.ListHotels(context.Background(), HotelQuery{})
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, SourceFallback, res.Source)
	assert.Len(t, res.Hotels, 8)
	assert.Equal(t, len(res.Hotels), res.Count)
}

func TestListHotelsUpstreamFailureServesFallback(t *testing.T) {
	stub := &stubOffers{configured: true, err: errors.New("timeout")}
	svc := &SearchService{Offers: stub, Cache: cache.NewLRU(10, time.Minute), Now: fixedNow}

	res := svc.ListHotels(context.Background(), HotelQuery{City: "New York", Limit: intPtr(3)})
	assert.Equal(t, SourceFallback, res.Source)
	assert.Len(t, res.Hotels, 3)
	assert.Equal(t, 3, res.Count)

	// failures are not memoized
	svc.ListHotels(context.Background(), HotelQuery{City: "New York", Limit: intPtr(3)})
	assert.Equal(t, 2, stub.calls)
}

func TestListHotelsFormatsAndCachesUpstream(t *testing.T) {
	stub := &stubOffers{configured: true, resp: &amadeus.HotelOffersResponse{Data: []amadeus.HotelOffer{parkHotel()}}}
	svc := &SearchService{Offers: stub, Cache: cache.NewLRU(10, time.Minute), Now: fixedNow}

	res := svc.ListHotels(context.Background(), HotelQuery{City: "nyc"})
	require.Equal(t, SourceAmadeus, res.Source)
	require.Len(t, res.Hotels, 1)

	h := res.Hotels[0]
	assert.Equal(t, "HLNYC001", h.ID)
	assert.Equal(t, "Park Hotel", h.Title)
	assert.Equal(t, "New York, US", h.Location)
	assert.Equal(t, 231.40, h.Price)
	assert.Equal(t, 4.5, h.Rating)
	assert.Equal(t, 150, h.Reviews)
	assert.Equal(t, "Hotel accommodation", h.Description)

	assert.Equal(t, "NYC", stub.last.CityCode)
	assert.Equal(t, "2026-02-15", stub.last.CheckIn)
	assert.Equal(t, "2026-02-20", stub.last.CheckOut)
	assert.Equal(t, 10, stub.last.Radius)
	assert.Equal(t, "en", stub.last.Language)

	again := svc.ListHotels(context.Background(), HotelQuery{City: "New York"})
	assert.Equal(t, res.Hotels, again.Hotels)
	assert.Equal(t, 1, stub.calls)
}

func TestListHotelsEmptyUpstreamServesFallback(t *testing.T) {
	stub := &stubOffers{configured: true, resp: &amadeus.HotelOffersResponse{}}
	svc := &SearchService{Offers: stub, Now: fixedNow}

	res := svc.ListHotels(context.Background(), HotelQuery{City: "Chicago"})
	assert.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Hotels)
}

func TestFormatOfferDefaults(t *testing.T) {
	l := formatOffer(amadeus.HotelOffer{ID: "X1"})
	assert.Equal(t, "X1", l.ID)
	assert.Equal(t, "Hotel", l.Title)
	assert.Equal(t, 100.0, l.Price)
	assert.Equal(t, "", l.Location)
}

func TestSearchFiltersByMaxPrice(t *testing.T) {
	svc := &SearchService{Now: fixedNow}

	res := svc.Search(context.Background(), SearchQuery{City: "New York", MaxPrice: floatPtr(200)})
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, 1, res.Filters.Guests)
	require.NotEmpty(t, res.Hotels)
	for _, h := range res.Hotels {
		assert.LessOrEqual(t, h.Price, 200.0)
	}
	assert.Equal(t, len(res.Hotels), res.Count)

	res = svc.Search(context.Background(), SearchQuery{})
	require.NotNil(t, res.Filters.MaxPrice)
	assert.Equal(t, DefaultMaxPrice, *res.Filters.MaxPrice)
	assert.Equal(t, "NYC", res.Filters.City)
	assert.Len(t, res.Hotels, 8)
}

func TestSearchExplicitZeroMaxPriceMatchesNothing(t *testing.T) {
	svc := &SearchService{Now: fixedNow}

	res := svc.Search(context.Background(), SearchQuery{City: "New York", MaxPrice: floatPtr(0)})
	assert.Equal(t, "success", res.Status)
	assert.Empty(t, res.Hotels)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, 0.0, *res.Filters.MaxPrice)
}

func TestListHotelsExplicitZeroLimit(t *testing.T) {
	stub := &stubOffers{configured: true, resp: &amadeus.HotelOffersResponse{Data: []amadeus.HotelOffer{parkHotel()}}}
	svc := &SearchService{Offers: stub, Now: fixedNow}

	res := svc.ListHotels(context.Background(), HotelQuery{City: "New York", Limit: intPtr(0)})
	assert.Equal(t, "success", res.Status)
	assert.Empty(t, res.Hotels)
	assert.NotNil(t, res.Hotels)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, 0, stub.calls)

	res = svc.ListHotels(context.Background(), HotelQuery{City: "Atlantis"})
	assert.Equal(t, SourceAmadeus, res.Source)
	assert.Equal(t, DefaultSearchLimit, stub.last.Max)
}

func TestHotelByID(t *testing.T) {
	svc := &SearchService{}

	h, err := svc.HotelByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Cozy Studio with Rooftop", h.Title)

	for _, id := range []string{"99", "abc", ""} {
		_, err := svc.HotelByID(id)
		assert.True(t, domain.IsNotFound(err), id)
	}
}

func TestCityCode(t *testing.T) {
	assert.Equal(t, "LAX", CityCode(" Los Angeles "))
	assert.Equal(t, "SFO", CityCode("san francisco"))
	assert.Equal(t, "NYC", CityCode("Atlantis"))
	assert.Len(t, Cities(), 8)
}
