package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"innstay/internal/cache"
	"innstay/internal/clients/amadeus"
	"innstay/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingOffers struct{}

func (failingOffers) Configured() bool { return true }

func (failingOffers) SearchHotelOffers(context.Context, amadeus.SearchParams) (*amadeus.HotelOffersResponse, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func searchRouter() *gin.Engine {
	svc := &services.SearchService{Offers: failingOffers{}, Cache: cache.NewLRU(10, time.Minute)}
	h := SearchHandler{Search: svc}
	r := newTestEngine()
	r.GET("/api/hotels", h.ListHotels)
	r.GET("/api/hotels/:id", h.HotelByID)
	r.GET("/api/search", h.SearchHotels)
	r.POST("/api/search", h.SearchHotels)
	r.GET("/api/cities", h.Cities)
	return r
}

func TestSearchHotelsUpstreamDownServesFallback(t *testing.T) {
	r := searchRouter()

	w := doJSON(t, r, http.MethodGet, "/api/hotels?city=New%20York&limit=4", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Fallback Hotels", body["source"])
	hotels := body["hotels"].([]any)
	assert.Len(t, hotels, 4)
	assert.Equal(t, 4.0, body["count"])
}

func TestSearchHotelByID(t *testing.T) {
	r := searchRouter()

	w := doJSON(t, r, http.MethodGet, "/api/hotels/6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	hotel := decode(t, w)["hotel"].(map[string]any)
	assert.Equal(t, "Stunning Manhattan Penthouse", hotel["title"])

	w = doJSON(t, r, http.MethodGet, "/api/hotels/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchEndpointGetAndPost(t *testing.T) {
	r := searchRouter()

	w := doJSON(t, r, http.MethodGet, "/api/search?city=nyc&maxPrice=150", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	for _, h := range body["hotels"].([]any) {
		assert.LessOrEqual(t, h.(map[string]any)["price"].(float64), 150.0)
	}
	filters := body["filters"].(map[string]any)
	assert.Equal(t, 1.0, filters["guests"])

	w = doJSON(t, r, http.MethodPost, "/api/search", map[string]any{"city": "New York", "guests": 2, "maxPrice": 200})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, 2.0, body["filters"].(map[string]any)["guests"])
	assert.Equal(t, float64(len(body["hotels"].([]any))), body["count"])

	w = doJSON(t, r, http.MethodGet, "/api/search?maxPrice=cheap", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/search?city=nyc&maxPrice=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, 0.0, body["count"])
	assert.Equal(t, 0.0, body["filters"].(map[string]any)["maxPrice"])

	w = doJSON(t, r, http.MethodGet, "/api/search", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1000.0, decode(t, w)["filters"].(map[string]any)["maxPrice"])
}

func TestSearchListLimitPresence(t *testing.T) {
	r := searchRouter()

	w := doJSON(t, r, http.MethodGet, "/api/hotels?limit=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 0.0, body["count"])
	assert.Empty(t, body["hotels"].([]any))

	w = doJSON(t, r, http.MethodGet, "/api/hotels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["hotels"].([]any), 8)

	w = doJSON(t, r, http.MethodGet, "/api/hotels?limit=-2", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCities(t *testing.T) {
	w := doJSON(t, searchRouter(), http.MethodGet, "/api/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cities := decode(t, w)["cities"].([]any)
	require.Len(t, cities, 8)
	assert.Equal(t, map[string]any{"name": "New York", "code": "NYC"}, cities[0])
}
