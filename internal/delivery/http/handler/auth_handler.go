package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"appointment-booking-service/internal/delivery/dto"
	"appointment-booking-service/internal/delivery/http/middleware"
	"appointment-booking-service/internal/usecase"
	"appointment-booking-service/pkg/response"
	"appointment-booking-service/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid username or password")
			return
		}
		response.InternalServerError(w, "Failed to log in")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", token)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Session information not found")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Session information not found")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), username, tokenID); err != nil {
		response.InternalServerError(w, "Failed to log out")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
