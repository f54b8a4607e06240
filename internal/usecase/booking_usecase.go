package usecase

import (
	"context"
	"errors"

	"appointment-booking-service/internal/converter"
	"appointment-booking-service/internal/delivery/dto"
	"appointment-booking-service/internal/domain/entity"
	"appointment-booking-service/internal/domain/repository"
	"appointment-booking-service/internal/listview"
	"appointment-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	DeleteAllBookings(ctx context.Context) (int64, error)
}

type bookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	validator   *validator.CustomValidator
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	validator *validator.CustomValidator,
) BookingUsecase {
	return &bookingUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		validator:   validator,
	}
}

// CreateBooking runs the full validation gate server-side and persists
// only when every field passes. Client-side checks are a UX convenience
// and are never trusted. Overlapping bookings for the same date and time
// slot are allowed on purpose.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	req.Normalize()

	if err := u.validator.Validate(req); err != nil {
		return nil, &validator.FieldErrors{Fields: u.validator.FormatValidationErrors(err)}
	}

	booking := &entity.Booking{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Errorf("Failed to create booking: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, date=%q, slot=%q", booking.ID, booking.Date, booking.TimeSlot)
	return converter.BookingToResponse(booking), nil
}

// ListBookings returns every booking most recent first, then applies the
// optional in-memory search and sort from the query.
func (u *bookingUsecase) ListBookings(ctx context.Context, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	if query != nil {
		bookings = listview.Filter(bookings, query.Search)
		if field, ok := listview.ParseSortField(query.SortBy); ok {
			bookings = listview.Sort(bookings, field, listview.ParseDirection(query.Order))
		}
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	rows, err := u.bookingRepo.DeleteByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete booking %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}

	u.log.Infof("Booking deleted: id=%s", id)
	return nil
}

func (u *bookingUsecase) DeleteAllBookings(ctx context.Context) (int64, error) {
	count, err := u.bookingRepo.DeleteAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to delete all bookings: %+v", err)
		return 0, err
	}

	u.log.Infof("All bookings deleted: count=%d", count)
	return count, nil
}
