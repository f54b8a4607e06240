package repository

import (
	"appointment-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB) ([]entity.Booking, error)
	DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteAll(db *gorm.DB) (int64, error)
	Count(db *gorm.DB) (int64, error)
}
