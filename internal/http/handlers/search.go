package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"innstay/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchAPI interface {
	ListHotels(ctx context.Context, q services.HotelQuery) services.HotelListResult
	Search(ctx context.Context, q services.SearchQuery) services.SearchResult
	HotelByID(id string) (services.Listing, error)
}

// SearchHandler serves the upstream-backed catalogue. Upstream failures never
// reach the client; the service answers from its fallback list instead.
type SearchHandler struct {
	Search SearchAPI
}

// GET /api/hotels
func (h SearchHandler) ListHotels(c *gin.Context) {
	q := services.HotelQuery{
		City:     strings.TrimSpace(c.Query("city")),
		CheckIn:  strings.TrimSpace(c.Query("checkIn")),
		CheckOut: strings.TrimSpace(c.Query("checkOut")),
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, ok := queryUint(c, "limit")
		if !ok {
			return
		}
		n := int(limit)
		q.Limit = &n
	}
	c.JSON(http.StatusOK, h.Search.ListHotels(c.Request.Context(), q))
}

// GET /api/hotels/:id
func (h SearchHandler) HotelByID(c *gin.Context) {
	hotel, err := h.Search.HotelByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "hotel": hotel})
}

// GET|POST /api/search
func (h SearchHandler) SearchHotels(c *gin.Context) {
	var q services.SearchQuery
	if c.Request.Method == http.MethodPost && c.Request.ContentLength != 0 {
		if !BindJSONOrError(c, &q) {
			return
		}
	} else {
		q.City = strings.TrimSpace(c.Query("city"))
		q.CheckIn = strings.TrimSpace(c.Query("checkIn"))
		q.CheckOut = strings.TrimSpace(c.Query("checkOut"))
		if raw := c.Query("guests"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, "invalid_query", "Invalid guests")
				return
			}
			q.Guests = n
		}
		if raw := c.Query("maxPrice"); raw != "" {
			p, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				respondError(c, http.StatusBadRequest, "invalid_query", "Invalid maxPrice")
				return
			}
			q.MaxPrice = &p
		}
	}
	c.JSON(http.StatusOK, h.Search.Search(c.Request.Context(), q))
}

// GET /api/cities
func (h SearchHandler) Cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": services.Cities()})
}
