package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ski-rental-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	Skis(ctx context.Context) ([]model.Ski, error)
	SkiByID(ctx context.Context, id int64) (model.Ski, error)
	CreateSki(ctx context.Context, ski *model.Ski) error
	UpdateSki(ctx context.Context, ski *model.Ski) error
	DeleteSki(ctx context.Context, id int64) error

	Reservations(ctx context.Context) ([]model.Reservation, error)
	ReservationsForCode(ctx context.Context, code string) ([]model.Reservation, error)
	ReservationsInPeriod(ctx context.Context, from, to time.Time) ([]model.Reservation, error)
	CreateReservation(ctx context.Context, r *model.Reservation) error
	UpdateReservation(ctx context.Context, r *model.Reservation) error
	DeleteReservation(ctx context.Context, id string) error

	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) Skis(ctx context.Context) ([]model.Ski, error) {
	var skis []model.Ski
	if err := s.db.WithContext(ctx).Order("brand, model, length_cm").Find(&skis).Error; err != nil {
		return nil, fmt.Errorf("failed to list skis: %w", err)
	}
	return skis, nil
}

func (s *gormStore) SkiByID(ctx context.Context, id int64) (model.Ski, error) {
	var ski model.Ski
	if err := s.db.WithContext(ctx).First(&ski, id).Error; err != nil {
		return model.Ski{}, fmt.Errorf("failed to fetch ski %d: %w", id, err)
	}
	return ski, nil
}

func (s *gormStore) CreateSki(ctx context.Context, ski *model.Ski) error {
	if err := s.db.WithContext(ctx).Create(ski).Error; err != nil {
		return fmt.Errorf("failed to create ski: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateSki(ctx context.Context, ski *model.Ski) error {
	res := s.db.WithContext(ctx).Model(&model.Ski{}).
		Where("id = ?", ski.ID).Updates(ski)
	if res.Error != nil {
		return fmt.Errorf("failed to update ski %d: %w", ski.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) DeleteSki(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Ski{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete ski %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) Reservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).Order("start_date").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *gormStore) ReservationsForCode(ctx context.Context, code string) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).
		Where("code = ?", code).Order("start_date").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reservations for code %s: %w", code, err)
	}
	return reservations, nil
}

// ReservationsInPeriod returns every reservation touching [from, to]. Callers
// widen the window themselves when adjacency matters.
func (s *gormStore) ReservationsInPeriod(ctx context.Context, from, to time.Time) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", to, from).
		Order("start_date").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reservations in period: %w", err)
	}
	return reservations, nil
}

func (s *gormStore) CreateReservation(ctx context.Context, r *model.Reservation) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateReservation(ctx context.Context, r *model.Reservation) error {
	res := s.db.WithContext(ctx).Model(&model.Reservation{}).
		Where("id = ?", r.ID).Updates(r)
	if res.Error != nil {
		return fmt.Errorf("failed to update reservation %s: %w", r.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) DeleteReservation(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reservation{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete reservation %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
