package converter

import (
	"appointment-booking-service/internal/delivery/dto"
	"appointment-booking-service/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:        booking.ID,
		Name:      booking.Name,
		Email:     booking.Email,
		Phone:     booking.Phone,
		Date:      booking.Date,
		TimeSlot:  booking.TimeSlot,
		CreatedAt: booking.CreatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
