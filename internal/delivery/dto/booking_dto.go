package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,lenientemail"`
	Phone    string `json:"phone" validate:"required,phone10"`
	Date     string `json:"date" validate:"required"`
	TimeSlot string `json:"timeSlot" validate:"required"`
}

// Normalize trims every field and lowercases the email before validation
// and storage. Validation rules see the trimmed values.
func (r *CreateBookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.TimeSlot = strings.TrimSpace(r.TimeSlot)
}

// ListBookingsQuery carries the optional search term and sort options
// from the admin list endpoint's query string.
type ListBookingsQuery struct {
	Search string
	SortBy string
	Order  string
}

// Response DTOs

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// BookingReport is the rendered spreadsheet plus a filename suggestion
// for the Content-Disposition header.
type BookingReport struct {
	Filename string
	Content  []byte
}
