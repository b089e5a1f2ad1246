package handlers

import (
	"innstay/internal/domain/models"
	"innstay/internal/repositories"

	"github.com/gin-gonic/gin"
)

func NewReviewAdmin(svc Resource[models.Review, models.ReviewInput, repositories.ReviewFilter]) CRUDHandler[models.Review, models.ReviewInput, repositories.ReviewFilter] {
	return CRUDHandler[models.Review, models.ReviewInput, repositories.ReviewFilter]{
		Svc:      svc,
		Singular: "review",
		Plural:   "reviews",
		Label:    "Review",
		Filter: func(c *gin.Context) (repositories.ReviewFilter, bool) {
			var f repositories.ReviewFilter
			var ok bool
			if f.HotelID, ok = queryInt64(c, "hotelId"); !ok {
				return f, false
			}
			if f.UserID, ok = queryInt64(c, "userId"); !ok {
				return f, false
			}
			if f.BookingID, ok = queryInt64(c, "bookingId"); !ok {
				return f, false
			}
			f.Limit, ok = queryUint(c, "limit")
			return f, ok
		},
	}
}
