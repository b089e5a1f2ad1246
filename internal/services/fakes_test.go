package services

import (
	"context"
	"sync"

	"innstay/internal/domain"
	"innstay/internal/domain/models"
	"innstay/internal/repositories"
)

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.User
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[int64]models.User{}}
}

func (m *memUsers) Get(_ context.Context, id int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (m *memUsers) Create(_ context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Email == u.Email {
			return models.User{}, domain.ConflictError{Msg: repositories.EmailTakenMsg}
		}
	}
	m.nextID++
	u.ID = m.nextID
	m.rows[u.ID] = u
	return u, nil
}

func (m *memUsers) List(_ context.Context, _ repositories.UserFilter) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.rows))
	for id := int64(1); id <= m.nextID; id++ {
		if u, ok := m.rows[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) Update(_ context.Context, id int64, mutate func(*models.User) error) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[id]
	if !ok {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err := mutate(&u); err != nil {
		return models.User{}, err
	}
	m.rows[id] = u
	return u, nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

type memHotels struct {
	nextID int64
	rows   map[int64]models.HotelRow
}

func newMemHotels() *memHotels {
	return &memHotels{rows: map[int64]models.HotelRow{}}
}

func (m *memHotels) List(_ context.Context, f repositories.HotelFilter) ([]models.HotelRow, error) {
	out := []models.HotelRow{}
	for id := int64(1); id <= m.nextID; id++ {
		r, ok := m.rows[id]
		if !ok || (f.ActiveOnly && !r.Active) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memHotels) Get(_ context.Context, id int64) (models.HotelRow, error) {
	r, ok := m.rows[id]
	if !ok {
		return models.HotelRow{}, domain.NotFoundError{Resource: "hotel"}
	}
	return r, nil
}

func (m *memHotels) Create(_ context.Context, row models.HotelRow) (models.HotelRow, error) {
	m.nextID++
	row.ID = m.nextID
	m.rows[row.ID] = row
	return row, nil
}

func (m *memHotels) Update(_ context.Context, id int64, mutate func(*models.HotelRow) error) (models.HotelRow, error) {
	r, ok := m.rows[id]
	if !ok {
		return models.HotelRow{}, domain.NotFoundError{Resource: "hotel"}
	}
	if err := mutate(&r); err != nil {
		return models.HotelRow{}, err
	}
	m.rows[id] = r
	return r, nil
}

func (m *memHotels) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

type memBookings struct {
	nextID int64
	rows   map[int64]models.BookingRow
}

func newMemBookings() *memBookings {
	return &memBookings{rows: map[int64]models.BookingRow{}}
}

func (m *memBookings) List(_ context.Context, _ repositories.BookingFilter) ([]models.BookingRow, error) {
	out := []models.BookingRow{}
	for id := int64(1); id <= m.nextID; id++ {
		if r, ok := m.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memBookings) Get(_ context.Context, id int64) (models.BookingRow, error) {
	r, ok := m.rows[id]
	if !ok {
		return models.BookingRow{}, domain.NotFoundError{Resource: "booking"}
	}
	return r, nil
}

func (m *memBookings) Create(_ context.Context, row models.BookingRow) (models.BookingRow, error) {
	m.nextID++
	row.ID = m.nextID
	m.rows[row.ID] = row
	return row, nil
}

func (m *memBookings) Update(_ context.Context, id int64, mutate func(*models.BookingRow) error) (models.BookingRow, error) {
	r, ok := m.rows[id]
	if !ok {
		return models.BookingRow{}, domain.NotFoundError{Resource: "booking"}
	}
	if err := mutate(&r); err != nil {
		return models.BookingRow{}, err
	}
	m.rows[id] = r
	return r, nil
}

func (m *memBookings) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }
