package repository

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/usherhire/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrStatusChanged is returned when the booking no longer has the status the
// caller read, so the conditional update matched no row.
var ErrStatusChanged = errors.New("booking status changed concurrently")

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByEventAndUsher(ctx context.Context, eventID, usherID uuid.UUID) (*entity.Booking, error)
	ListByUsher(ctx context.Context, usherID uuid.UUID, status *entity.BookingStatus) ([]entity.Booking, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.Booking, error)
	ListByEvents(ctx context.Context, eventIDs []uuid.UUID) ([]entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) error
	// Complete moves an accepted booking to completed and increments the
	// usher's total_events in the same transaction.
	Complete(ctx context.Context, id, usherID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.db.WithContext(ctx).Omit("Event", "Usher").Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	if err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Usher").
		Where("id = ?", id).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByEventAndUsher(ctx context.Context, eventID, usherID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND usher_id = ?", eventID, usherID).
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUsher(ctx context.Context, usherID uuid.UUID, status *entity.BookingStatus) ([]entity.Booking, error) {
	query := r.db.WithContext(ctx).
		Preload("Event").
		Where("usher_id = ?", usherID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var bookings []entity.Booking
	if err := query.Order("applied_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := r.db.WithContext(ctx).
		Preload("Usher").
		Preload("Usher.UsherProfile").
		Where("event_id = ?", eventID).
		Order("applied_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListByEvents(ctx context.Context, eventIDs []uuid.UUID) ([]entity.Booking, error) {
	if len(eventIDs) == 0 {
		return []entity.Booking{}, nil
	}

	var bookings []entity.Booking
	if err := r.db.WithContext(ctx).
		Where("event_id IN ?", eventIDs).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func (r *bookingRepository) Complete(ctx context.Context, id, usherID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Booking{}).
			Where("id = ? AND status = ?", id, entity.BookingAccepted).
			Update("status", entity.BookingCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}

		res = tx.Model(&entity.UsherProfile{}).
			Where("user_id = ?", usherID).
			Update("total_events", gorm.Expr("total_events + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("usher profile for %s: %w", usherID, gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Booking{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
