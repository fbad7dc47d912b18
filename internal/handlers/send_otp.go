package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

// OTPRequester defines the interface that the service must implement.
type OTPRequester interface {
	RequestCode(ctx context.Context, phone string) error
}

// SendOTPRequest represents the JSON body for requesting an OTP
// swagger:model SendOTPRequest
type SendOTPRequest struct {
	// Phone number from the allow-list
	// required: true
	// example: 9876543210
	Phone string `json:"phone"`
}

// SendOTPResponse represents a successful OTP issuance
// swagger:model SendOTPResponse
type SendOTPResponse struct {
	// Success message
	// example: OTP sent successfully
	Message string `json:"message"`
}

// SendOTPErrorResponse represents an error response for OTP issuance
// swagger:model SendOTPErrorResponse
type SendOTPErrorResponse struct {
	// Error message
	// example: Phone number is required
	Message string `json:"message"`
}

// NewSendOTPHandler returns an HTTP handler that issues an OTP.
// @Summary Send OTP
// @Description Issues a 6-digit one-time code for an allow-listed phone, replacing any previous code
// @Tags auth
// @Accept json
// @Produce json
// @Param sendOTPRequest body handlers.SendOTPRequest true "OTP request"
// @Success 200 {object} handlers.SendOTPResponse "OTP issued"
// @Failure 400 {object} handlers.SendOTPErrorResponse "Phone number missing"
// @Failure 401 {object} handlers.SendOTPErrorResponse "Phone not authorized"
// @Router /api/send-otp [post]
func NewSendOTPHandler(svc OTPRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendOTPRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendOTPErrorResponse{
				Message: "Phone number is required",
			})
			return
		}

		err := svc.RequestCode(r.Context(), req.Phone)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhoneRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SendOTPErrorResponse{
					Message: "Phone number is required",
				})
			case errors.Is(err, services.ErrPhoneNotAuthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(SendOTPErrorResponse{
					Message: "Unauthorized: User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SendOTPErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendOTPResponse{
			Message: "OTP sent successfully",
		})
	}
}
