package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"appointment-booking-service/internal/delivery/dto"
	"appointment-booking-service/internal/delivery/http/handler"
	"appointment-booking-service/internal/usecase"
	"appointment-booking-service/pkg/response"
	"appointment-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ---------- Mocks ----------

type mockBookingUsecase struct {
	createResp   *dto.BookingResponse
	createErr    error
	listResp     *dto.BookingListResponse
	listErr      error
	deleteErr    error
	deleteAll    int64
	deleteAllErr error

	lastQuery    *dto.ListBookingsQuery
	lastDeleteID uuid.UUID
}

func (m *mockBookingUsecase) CreateBooking(_ context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	return m.createResp, m.createErr
}

func (m *mockBookingUsecase) ListBookings(_ context.Context, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error) {
	m.lastQuery = query
	return m.listResp, m.listErr
}

func (m *mockBookingUsecase) DeleteBooking(_ context.Context, id uuid.UUID) error {
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockBookingUsecase) DeleteAllBookings(_ context.Context) (int64, error) {
	return m.deleteAll, m.deleteAllErr
}

var _ usecase.BookingUsecase = (*mockBookingUsecase)(nil)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return env
}

// ---------- Tests ----------

func TestCreateBooking_Created(t *testing.T) {
	mock := &mockBookingUsecase{
		createResp: &dto.BookingResponse{ID: uuid.New(), Name: "John Doe"},
	}
	h := handler.NewBookingHandler(mock)

	body := `{"name":"John Doe","email":"john@example.com","phone":"9876543210","date":"February 15, 2026","timeSlot":"10:00 AM - 11:00 AM"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}
}

func TestCreateBooking_MalformedBody(t *testing.T) {
	h := handler.NewBookingHandler(&mockBookingUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if env.Message != "Invalid request body" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestCreateBooking_ValidationFailure(t *testing.T) {
	mock := &mockBookingUsecase{
		createErr: &validator.FieldErrors{Fields: map[string]string{"email": "email is required"}},
	}
	h := handler.NewBookingHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"name":"John Doe"}`))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	fields, ok := env.Error.(map[string]interface{})
	if !ok {
		t.Fatalf("expected field error map, got %T", env.Error)
	}
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected email in error map, got %v", fields)
	}
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	mock := &mockBookingUsecase{createErr: errors.New("connection refused")}
	h := handler.NewBookingHandler(mock)

	body := `{"name":"John Doe","email":"john@example.com","phone":"9876543210","date":"February 15, 2026","timeSlot":"10:00 AM - 11:00 AM"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBooking(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	// Raw store error detail must never reach the caller.
	if strings.Contains(env.Message, "connection refused") {
		t.Fatalf("internal error leaked to caller: %q", env.Message)
	}
}

func TestGetAllBookings_PassesQuery(t *testing.T) {
	mock := &mockBookingUsecase{listResp: &dto.BookingListResponse{Bookings: []dto.BookingResponse{}, Total: 0}}
	h := handler.NewBookingHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?search=john&sort_by=name&order=desc", nil)
	rec := httptest.NewRecorder()

	h.GetAllBookings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if mock.lastQuery == nil {
		t.Fatal("expected query to reach usecase")
	}
	if mock.lastQuery.Search != "john" || mock.lastQuery.SortBy != "name" || mock.lastQuery.Order != "desc" {
		t.Fatalf("query not passed through: %+v", mock.lastQuery)
	}
}

func TestDeleteBooking_InvalidID(t *testing.T) {
	h := handler.NewBookingHandler(&mockBookingUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.DeleteBooking(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad uuid, got %d", rec.Code)
	}
}

func TestDeleteBooking_NotFound(t *testing.T) {
	mock := &mockBookingUsecase{deleteErr: usecase.ErrBookingNotFound}
	h := handler.NewBookingHandler(mock)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	h.DeleteBooking(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if mock.lastDeleteID != id {
		t.Fatalf("expected delete id %s to reach usecase, got %s", id, mock.lastDeleteID)
	}
}

func TestDeleteAllBookings_ReturnsCount(t *testing.T) {
	mock := &mockBookingUsecase{deleteAll: 7}
	h := handler.NewBookingHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings", nil)
	rec := httptest.NewRecorder()

	h.DeleteAllBookings(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %T", env.Data)
	}
	if data["deleted"] != float64(7) {
		t.Fatalf("expected deleted count 7, got %v", data["deleted"])
	}
}

func TestGetTimeSlots(t *testing.T) {
	h := handler.NewBookingHandler(&mockBookingUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil)
	rec := httptest.NewRecorder()

	h.GetTimeSlots(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	slots, ok := env.Data.([]interface{})
	if !ok {
		t.Fatalf("expected slot list, got %T", env.Data)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 time slots, got %d", len(slots))
	}
	if slots[0] != "10:00 AM - 11:00 AM" {
		t.Fatalf("unexpected first slot %v", slots[0])
	}
}
