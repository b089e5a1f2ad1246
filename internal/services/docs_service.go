package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"innstay/internal/domain/models"
	"innstay/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking confirmation PDFs.
type DocsService struct {
	Bookings BookingStore
	Hotels   HotelStore
	Users    UserStore
	Loader   func(ctx context.Context, bookingID int64) (bookingDocData, error)
	Now      func() time.Time
}

type bookingDocData struct {
	Booking       models.Booking
	HotelName     string
	HotelLocation string
	CheckInTime   string
	CheckOutTime  string
	GuestName     string
	GuestEmail    string
}

func (s DocsService) GenerateConfirmation(ctx context.Context, bookingID int64) ([]byte, string, error) {
	data, err := s.loadBookingDocData(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", bookingID))
	return buildConfirmationPDF(data, s.now())
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// loadBookingDocData reads the booking; hotel and guest details are best effort
// because bookings keep foreign ids without constraints.
func (s DocsService) loadBookingDocData(ctx context.Context, bookingID int64) (bookingDocData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	var out bookingDocData
	row, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return out, err
	}
	out.Booking = row.ToView()

	if h, err := s.Hotels.Get(ctx, row.HotelID); err == nil {
		v := h.ToView()
		out.HotelName = v.Name
		out.HotelLocation = v.Location
		out.CheckInTime = v.CheckIn
		out.CheckOutTime = v.CheckOut
	}
	if u, err := s.Users.Get(ctx, row.UserID); err == nil {
		out.GuestName = u.Name
		out.GuestEmail = u.Email
	}
	return out, nil
}

func buildConfirmationPDF(d bookingDocData, issued time.Time) ([]byte, string, error) {
	b := d.Booking

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "InnStay - BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Confirmation : INN-%06d", b.ID),
		fmt.Sprintf("Issued       : %s", issued.Format("2006-01-02 15:04")),
		fmt.Sprintf("Guest        : %s", safe(d.GuestName, fmt.Sprintf("User #%d", b.UserID))),
		fmt.Sprintf("Email        : %s", safe(d.GuestEmail, "-")),
		fmt.Sprintf("Hotel        : %s", safe(d.HotelName, fmt.Sprintf("Hotel #%d", b.HotelID))),
		fmt.Sprintf("Location     : %s", safe(d.HotelLocation, "-")),
		fmt.Sprintf("Check-in     : %s from %s", safe(b.CheckIn, "-"), safe(d.CheckInTime, models.DefaultCheckInTime)),
		fmt.Sprintf("Check-out    : %s by %s", safe(b.CheckOut, "-"), safe(d.CheckOutTime, models.DefaultCheckOutTime)),
		fmt.Sprintf("Nights       : %d", b.Nights),
		fmt.Sprintf("Guests       : %d", b.Guests),
		fmt.Sprintf("Status       : %s", safe(b.Status, "-")),
	}
	if b.RoomID != nil {
		lines = append(lines, fmt.Sprintf("Room         : #%d", *b.RoomID))
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total: "+utils.FormatUSD(b.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this confirmation at check-in. Contact the property for changes to your stay.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONFIRMATION_%d_%s.pdf", b.ID, safeFilenamePart(d.GuestName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
