package handler

import (
	"context"
	"net/http"
	"time"

	"appointment-booking-service/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

type healthStatus struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Check pings the record store and the session store. The response is
// 200 only when the record store is reachable; a degraded session store
// is reported but does not fail the check.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := healthStatus{Database: "up", Redis: "up"}
	healthy := true

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		status.Database = "down"
		healthy = false
	}

	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		status.Redis = "down"
	}

	if !healthy {
		response.ServiceUnavailable(w, "Store unavailable", status)
		return
	}

	response.Success(w, http.StatusOK, "ok", status)
}
