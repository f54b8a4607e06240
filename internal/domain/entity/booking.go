package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking represents a single appointment reservation. Records are
// immutable after creation: the lifecycle is create -> read -> optional
// delete, never update.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Date      string    `gorm:"type:varchar(100);not null" json:"date"`
	TimeSlot  string    `gorm:"type:varchar(50);not null" json:"timeSlot"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate assigns the identifier in application code so it works the
// same on postgres and on the sqlite database used in tests.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
