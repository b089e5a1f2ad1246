package handlers

import (
	"context"
	"net/http"
	"strings"

	"innstay/internal/domain/models"
	"innstay/internal/repositories"

	"github.com/gin-gonic/gin"
)

func NewBookingAdmin(svc Resource[models.Booking, models.BookingInput, repositories.BookingFilter]) CRUDHandler[models.Booking, models.BookingInput, repositories.BookingFilter] {
	return CRUDHandler[models.Booking, models.BookingInput, repositories.BookingFilter]{
		Svc:      svc,
		Singular: "booking",
		Plural:   "bookings",
		Label:    "Booking",
		Filter: func(c *gin.Context) (repositories.BookingFilter, bool) {
			f := repositories.BookingFilter{Status: strings.TrimSpace(c.Query("status"))}
			var ok bool
			if f.UserID, ok = queryInt64(c, "userId"); !ok {
				return f, false
			}
			if f.HotelID, ok = queryInt64(c, "hotelId"); !ok {
				return f, false
			}
			f.Limit, ok = queryUint(c, "limit")
			return f, ok
		},
	}
}

type ConfirmationRenderer interface {
	GenerateConfirmation(ctx context.Context, bookingID int64) ([]byte, string, error)
}

// BookingDocs serves printable booking documents.
type BookingDocs struct {
	Docs ConfirmationRenderer
}

// GET /api/admin/bookings/:id/confirmation
func (h BookingDocs) Confirmation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pdf, filename, err := h.Docs.GenerateConfirmation(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
