package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

// PhoneLoginer defines the interface that the login service must implement.
type PhoneLoginer interface {
	Login(ctx context.Context, phone string) (string, error)
}

// LoginRequest represents the JSON body for the OTP-less login path
// swagger:model LoginRequest
type LoginRequest struct {
	// Phone number from the allow-list
	// required: true
	// example: 9876543210
	Phone string `json:"phone"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// example: Login successful
	Message string `json:"message"`

	// Authenticated phone
	// example: 9876543210
	Phone string `json:"phone"`

	// Session token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Unauthorized: User not found
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for the legacy OTP-less login.
// It still checks the allow-list and issues the same short-lived token
// as the OTP path.
// @Summary Login without OTP
// @Description Legacy login path; allow-list check plus session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Phone number missing"
// @Failure 401 {object} handlers.LoginErrorResponse "Phone not authorized"
// @Router /api/login [post]
func NewLoginHandler(svc PhoneLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Message: "Phone number is required",
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Phone)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhoneRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Phone number is required",
				})
			case errors.Is(err, services.ErrPhoneNotAuthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Unauthorized: User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Login successful",
			Phone:   req.Phone,
			Token:   token,
		})
	}
}
