package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"appointment-booking-service/internal/delivery/dto"
	"appointment-booking-service/internal/domain/entity"
	"appointment-booking-service/internal/usecase"
	"appointment-booking-service/pkg/response"
	"appointment-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		var fieldErrs *validator.FieldErrors
		if errors.As(err, &fieldErrs) {
			response.ValidationError(w, fieldErrs.Fields)
			return
		}
		response.InternalServerError(w, "Failed to create booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	query := &dto.ListBookingsQuery{
		Search: r.URL.Query().Get("search"),
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
	}

	bookings, err := h.bookingUsecase.ListBookings(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	if err := h.bookingUsecase.DeleteBooking(r.Context(), bookingID); err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to delete booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking deleted successfully", nil)
}

func (h *BookingHandler) DeleteAllBookings(w http.ResponseWriter, r *http.Request) {
	count, err := h.bookingUsecase.DeleteAllBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to delete bookings")
		return
	}

	response.Success(w, http.StatusOK, "All bookings deleted successfully", dto.DeleteAllResponse{Deleted: count})
}

// GetTimeSlots returns the fixed catalog of bookable time slot labels.
func (h *BookingHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Time slots retrieved successfully", entity.TimeSlots)
}
