package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

// OTPVerifier defines the interface that the service must implement.
type OTPVerifier interface {
	VerifyCode(ctx context.Context, phone, otp string) (string, error)
}

// VerifyOTPRequest represents the JSON body for verifying an OTP
// swagger:model VerifyOTPRequest
type VerifyOTPRequest struct {
	// Phone number the code was issued for
	// required: true
	// example: 9876543210
	Phone string `json:"phone"`

	// Submitted 6-digit code
	// required: true
	// example: 483920
	OTP string `json:"otp"`
}

// VerifyOTPResponse represents a successful verification
// swagger:model VerifyOTPResponse
type VerifyOTPResponse struct {
	// Success message
	// example: Login successful
	Message string `json:"message"`

	// Session token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// VerifyOTPErrorResponse represents an error response for verification
// swagger:model VerifyOTPErrorResponse
type VerifyOTPErrorResponse struct {
	// Error message
	// example: Invalid or expired OTP
	Message string `json:"message"`
}

// NewVerifyOTPHandler returns an HTTP handler that verifies an OTP and
// issues a session token.
// @Summary Verify OTP
// @Description Verifies the submitted code and returns a signed session token
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyOTPRequest body handlers.VerifyOTPRequest true "OTP verification request"
// @Success 200 {object} handlers.VerifyOTPResponse "Session token returned"
// @Failure 400 {object} handlers.VerifyOTPErrorResponse "Phone or OTP missing"
// @Failure 401 {object} handlers.VerifyOTPErrorResponse "Invalid, expired, or rate-limited"
// @Router /api/verify-otp [post]
func NewVerifyOTPHandler(svc OTPVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyOTPRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyOTPErrorResponse{
				Message: "Phone and OTP are required",
			})
			return
		}

		token, err := svc.VerifyCode(r.Context(), req.Phone, req.OTP)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOTPRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VerifyOTPErrorResponse{
					Message: "Phone and OTP are required",
				})
			case errors.Is(err, services.ErrInvalidOrExpiredOTP):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(VerifyOTPErrorResponse{
					Message: "Invalid or expired OTP",
				})
			case errors.Is(err, services.ErrTooManyAttempts):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(VerifyOTPErrorResponse{
					Message: "Too many failed attempts, request a new OTP",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyOTPErrorResponse{
					Message: "Internal server error during OTP verification",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyOTPResponse{
			Message: "Login successful",
			Token:   token,
		})
	}
}
