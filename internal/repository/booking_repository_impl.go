package repository

import (
	"errors"

	"appointment-booking-service/internal/domain/entity"
	domainRepo "appointment-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// DeleteByID removes one booking. Returns affected rows: 1 = deleted,
// 0 = no booking with that identifier.
func (r *bookingRepository) DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Booking{})
	return result.RowsAffected, result.Error
}

// DeleteAll removes every booking and returns how many were removed.
func (r *bookingRepository) DeleteAll(db *gorm.DB) (int64, error) {
	result := db.Where("1 = 1").Delete(&entity.Booking{})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Booking{}).Count(&count).Error
	return count, err
}
