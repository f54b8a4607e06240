package http

import (
	"net/http"

	"appointment-booking-service/internal/delivery/http/handler"
	"appointment-booking-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	bookingHandler *handler.BookingHandler
	reportHandler  *handler.ReportHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	reportHandler *handler.ReportHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		bookingHandler: bookingHandler,
		reportHandler:  reportHandler,
		healthHandler:  healthHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Public routes: the booking form and its slot catalog
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/slots", r.bookingHandler.GetTimeSlots).Methods(http.MethodGet)

	// Auth routes
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Admin routes (session required)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/bookings", r.bookingHandler.GetAllBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/export", r.reportHandler.ExportBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", r.bookingHandler.DeleteBooking).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings", r.bookingHandler.DeleteAllBookings).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}
