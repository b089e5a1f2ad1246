package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"innstay/internal/cache"
	"innstay/internal/clients/amadeus"
	"innstay/internal/domain"
	"innstay/internal/utils"
)

const (
	SourceAmadeus  = "Amadeus API"
	SourceFallback = "Fallback Hotels"

	DefaultCityCode    = "NYC"
	DefaultSearchLimit = 10
	DefaultMaxPrice    = 1000.0
	defaultStayNights  = 5
	defaultRadiusKM    = 10
	defaultLanguage    = "en"

	offerRating      = 4.5
	offerReviews     = 150
	offerPrice       = 100.0
	offerImage       = "https://images.unsplash.com/photo-1631049307038-da31e36f2d5c?w=500"
	offerDescription = "Hotel accommodation"
)

var cityCodes = map[string]string{
	"new york":           "NYC",
	"nyc":                "NYC",
	"new york city":      "NYC",
	"los angeles":        "LAX",
	"la":                 "LAX",
	"los angeles county": "LAX",
	"chicago":            "ORD",
	"las vegas":          "LAS",
	"miami":              "MIA",
	"san francisco":      "SFO",
	"boston":             "BOS",
	"seattle":            "SEA",
}

type City struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Cities lists the destinations the search form offers.
func Cities() []City {
	return []City{
		{"New York", "NYC"},
		{"Los Angeles", "LAX"},
		{"Chicago", "ORD"},
		{"Las Vegas", "LAS"},
		{"Miami", "MIA"},
		{"San Francisco", "SFO"},
		{"Boston", "BOS"},
		{"Seattle", "SEA"},
	}
}

// CityCode maps a free-text city name to its code. Unknown names map to NYC.
func CityCode(city string) string {
	if code, ok := cityCodes[strings.ToLower(strings.TrimSpace(city))]; ok {
		return code
	}
	return DefaultCityCode
}

// Listing is the storefront card shape. ID is numeric for built-in hotels and
// the upstream hotel id string otherwise.
type Listing struct {
	ID          any     `json:"id"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// HotelQuery is the listing request. A nil Limit means DefaultSearchLimit;
// an explicit zero asks for no hotels.
type HotelQuery struct {
	City     string
	CheckIn  string
	CheckOut string
	Limit    *int
}

type HotelListResult struct {
	Status string    `json:"status"`
	Source string    `json:"source"`
	Count  int       `json:"count"`
	Hotels []Listing `json:"hotels"`
}

type SearchQuery struct {
	City     string  `json:"city" form:"city"`
	CheckIn  string  `json:"checkIn" form:"checkIn"`
	CheckOut string  `json:"checkOut" form:"checkOut"`
	Guests   int     `json:"guests" form:"guests"`
	MaxPrice *float64 `json:"maxPrice" form:"maxPrice"`
}

type SearchResult struct {
	Status  string      `json:"status"`
	Count   int         `json:"count"`
	Filters SearchQuery `json:"filters"`
	Hotels  []Listing   `json:"hotels"`
}

type OffersClient interface {
	Configured() bool
	SearchHotelOffers(ctx context.Context, p amadeus.SearchParams) (*amadeus.HotelOffersResponse, error)
}

type SearchService struct {
	Offers   OffersClient
	Cache    cache.Cache
	Fallback []Listing
	Now      func() time.Time
}

func (s *SearchService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SearchService) withDefaults(q HotelQuery) HotelQuery {
	if strings.TrimSpace(q.City) == "" {
		q.City = DefaultCityCode
	}
	if q.CheckIn == "" {
		q.CheckIn = utils.FormatDate(s.now().AddDate(0, 0, 1))
	}
	if q.CheckOut == "" {
		if in, err := utils.ParseDate(q.CheckIn); err == nil {
			q.CheckOut = utils.FormatDate(in.AddDate(0, 0, defaultStayNights))
		}
	}
	if q.Limit == nil || *q.Limit < 0 {
		n := DefaultSearchLimit
		q.Limit = &n
	}
	return q
}

// ListHotels asks the upstream API and falls back to the built-in list when
// it is not configured, fails or has nothing for the city.
func (s *SearchService) ListHotels(ctx context.Context, q HotelQuery) HotelListResult {
	q = s.withDefaults(q)
	code := CityCode(q.City)
	if *q.Limit == 0 {
		return HotelListResult{Status: "success", Source: SourceFallback, Count: 0, Hotels: []Listing{}}
	}

	if s.Offers != nil && s.Offers.Configured() {
		hotels, err := s.fetchOffers(ctx, code, q)
		switch {
		case err != nil:
			utils.Log.Warnw("hotel search failed, serving fallback",
				"city_code", code, "request_id", utils.RequestIDFrom(ctx), "error", err)
		case len(hotels) > 0:
			return HotelListResult{Status: "success", Source: SourceAmadeus, Count: len(hotels), Hotels: hotels}
		}
	}

	hotels := s.fallbackFor(q.City, code, *q.Limit)
	return HotelListResult{Status: "success", Source: SourceFallback, Count: len(hotels), Hotels: hotels}
}

// Search runs ListHotels and keeps hotels priced at or below MaxPrice.
func (s *SearchService) Search(ctx context.Context, q SearchQuery) SearchResult {
	if strings.TrimSpace(q.City) == "" {
		q.City = DefaultCityCode
	}
	if q.Guests <= 0 {
		q.Guests = 1
	}
	if q.MaxPrice == nil {
		p := DefaultMaxPrice
		q.MaxPrice = &p
	}

	list := s.ListHotels(ctx, HotelQuery{City: q.City, CheckIn: q.CheckIn, CheckOut: q.CheckOut})
	hotels := make([]Listing, 0, len(list.Hotels))
	for _, h := range list.Hotels {
		if h.Price <= *q.MaxPrice {
			hotels = append(hotels, h)
		}
	}
	return SearchResult{Status: "success", Count: len(hotels), Filters: q, Hotels: hotels}
}

// HotelByID looks a hotel up in the built-in list.
func (s *SearchService) HotelByID(id string) (Listing, error) {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err == nil {
		for _, h := range s.fallback() {
			if h.ID == any(n) {
				return h, nil
			}
		}
	}
	return Listing{}, domain.NotFoundError{Resource: "Hotel"}
}

func (s *SearchService) fallback() []Listing {
	if s.Fallback != nil {
		return s.Fallback
	}
	return FallbackHotels
}

func (s *SearchService) fallbackFor(city, code string, limit int) []Listing {
	all := s.fallback()
	needle := strings.ToLower(strings.TrimSpace(city))

	matched := []Listing{}
	for _, h := range all {
		if code == DefaultCityCode || strings.Contains(strings.ToLower(h.Location), needle) {
			matched = append(matched, h)
		}
	}
	if len(matched) == 0 {
		matched = append(matched, all...)
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func searchCacheKey(p amadeus.SearchParams) string {
	return fmt.Sprintf("%s|%s|%s|%d|%s|%d", p.CityCode, p.CheckIn, p.CheckOut, p.Radius, p.Language, p.Max)
}

// fetchOffers memoizes successful upstream responses by their exact parameters.
func (s *SearchService) fetchOffers(ctx context.Context, code string, q HotelQuery) ([]Listing, error) {
	params := amadeus.SearchParams{
		CityCode: code,
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Radius:   defaultRadiusKM,
		Language: defaultLanguage,
		Max:      *q.Limit,
	}
	key := searchCacheKey(params)

	if s.Cache != nil {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var cached amadeus.HotelOffersResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return formatOffers(cached.Data, *q.Limit), nil
			}
		}
	}

	resp, err := s.Offers.SearchHotelOffers(ctx, params)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			s.Cache.Set(ctx, key, raw)
		}
	}
	return formatOffers(resp.Data, *q.Limit), nil
}

func formatOffers(data []amadeus.HotelOffer, limit int) []Listing {
	if limit > 0 && len(data) > limit {
		data = data[:limit]
	}
	out := make([]Listing, 0, len(data))
	for _, h := range data {
		out = append(out, formatOffer(h))
	}
	return out
}

func formatOffer(h amadeus.HotelOffer) Listing {
	l := Listing{
		ID:          h.ID,
		Title:       h.Name,
		Price:       offerPrice,
		Rating:      offerRating,
		Reviews:     offerReviews,
		Image:       offerImage,
		Description: offerDescription,
	}
	addr := h.Address
	desc := h.Description
	if h.Hotel != nil {
		if h.Hotel.HotelID != "" {
			l.ID = h.Hotel.HotelID
		}
		if h.Hotel.Name != "" {
			l.Title = h.Hotel.Name
		}
		if h.Hotel.Address != nil {
			addr = h.Hotel.Address
		}
		if h.Hotel.Description != nil {
			desc = h.Hotel.Description
		}
	}
	if l.Title == "" {
		l.Title = "Hotel"
	}
	if addr != nil {
		l.Location = utils.JoinLocation(addr.CityName, "", addr.CountryCode)
	}
	if desc != nil && strings.TrimSpace(desc.Text) != "" {
		l.Description = desc.Text
	}
	if len(h.Offers) > 0 {
		l.Price = 0
		if p, err := utils.ParseMoney(h.Offers[0].Price.Total); err == nil {
			l.Price = p
		}
	}
	return l
}
