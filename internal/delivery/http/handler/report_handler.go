package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"appointment-booking-service/internal/usecase"
	"appointment-booking-service/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
	}
}

// ExportBookings streams the booking list as an xlsx download. This is
// the one endpoint that writes raw bytes instead of the JSON envelope.
func (h *ReportHandler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.ExportBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to export bookings")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(report.Content)))
	w.WriteHeader(http.StatusOK)
	w.Write(report.Content)
}
