package usecase

import (
	"context"
	"fmt"
	"time"

	"appointment-booking-service/internal/delivery/dto"
	"appointment-booking-service/internal/domain/entity"
	"appointment-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	reportSheet      = "Bookings"
	reportTimeFormat = "Jan 2, 2006 3:04 PM"
)

var reportHeaders = []string{"No.", "Name", "Email", "Phone", "Date", "Time Slot", "Booked At"}

type ReportUsecase interface {
	ExportBookings(ctx context.Context) (*dto.BookingReport, error)
}

type reportUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
}

func NewReportUsecase(db *gorm.DB, log *logrus.Logger, bookingRepo repository.BookingRepository) ReportUsecase {
	return &reportUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
	}
}

// ExportBookings renders the current booking list as an xlsx workbook,
// one header row plus one row per record in list order. An empty list
// produces a header-only file.
func (u *reportUsecase) ExportBookings(ctx context.Context) (*dto.BookingReport, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load bookings for export: %+v", err)
		return nil, err
	}

	content, err := buildWorkbook(bookings)
	if err != nil {
		u.log.Errorf("Failed to build booking report: %+v", err)
		return nil, err
	}

	return &dto.BookingReport{
		Filename: fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102")),
		Content:  content,
	}, nil
}

func buildWorkbook(bookings []entity.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, err
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i := range bookings {
		b := &bookings[i]
		values := []interface{}{
			i + 1,
			b.Name,
			b.Email,
			b.Phone,
			b.Date,
			b.TimeSlot,
			b.CreatedAt.Format(reportTimeFormat),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
