package handlers

import (
	"context"
	"net/http"
	"strings"

	"innstay/internal/domain/models"
	"innstay/internal/repositories"

	"github.com/gin-gonic/gin"
)

type HotelAPI interface {
	Resource[models.Hotel, models.HotelInput, repositories.HotelFilter]
	ListPublic(ctx context.Context, limit uint) ([]models.Hotel, error)
	GetPublic(ctx context.Context, id int64) (models.Hotel, error)
}

// PublicHotels serves the storefront catalogue: active hotels only.
type PublicHotels struct {
	Hotels HotelAPI
}

// GET /api/hotels
func (h PublicHotels) List(c *gin.Context) {
	limit, ok := queryUint(c, "limit")
	if !ok {
		return
	}
	hotels, err := h.Hotels.ListPublic(c.Request.Context(), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": len(hotels), "hotels": hotels})
}

// GET /api/hotels/:id
func (h PublicHotels) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	hotel, err := h.Hotels.GetPublic(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "hotel": hotel})
}

func NewHotelAdmin(svc HotelAPI) CRUDHandler[models.Hotel, models.HotelInput, repositories.HotelFilter] {
	return CRUDHandler[models.Hotel, models.HotelInput, repositories.HotelFilter]{
		Svc:      svc,
		Singular: "hotel",
		Plural:   "hotels",
		Label:    "Hotel",
		Filter: func(c *gin.Context) (repositories.HotelFilter, bool) {
			limit, ok := queryUint(c, "limit")
			return repositories.HotelFilter{
				Status: strings.TrimSpace(c.Query("status")),
				Query:  strings.TrimSpace(c.Query("q")),
				Limit:  limit,
			}, ok
		},
	}
}
