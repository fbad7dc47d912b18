package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

// WebHostingCreator defines the interface that the service must implement.
type WebHostingCreator interface {
	Create(ctx context.Context, user models.WebHostingUserDB) (int64, error)
}

// AddWebHostingUserRequest represents the JSON body for adding a
// hosting customer. Field names match the historical Excel exports.
// swagger:model AddWebHostingUserRequest
type AddWebHostingUserRequest struct {
	// Customer name
	// required: true
	// example: example.org
	UserName string `json:"user_name"`

	// Hosting type
	// required: true
	// example: Shared
	HostingType string `json:"hosting_type"`

	// Billing plan
	// required: true
	// example: Silver
	TariffPlan string `json:"tariff_plan"`

	// Annual charge
	// required: true
	// example: 5000
	YearlyAmount any `json:"yearly_amount"`

	// Activation date (YYYY-MM-DD)
	// required: true
	ActivationDate string `json:"activation_date"`

	// Contact email
	Email string `json:"email"`

	// Contact person
	ContactPerson string `json:"contact_person"`
}

// AddWebHostingUserResponse represents a successful creation
// swagger:model AddWebHostingUserResponse
type AddWebHostingUserResponse struct {
	// Success message
	// example: User added successfully.
	Message string `json:"message"`

	// New record id
	// example: 3
	ID int64 `json:"id"`
}

// WebHostingErrorResponse represents an error response
// swagger:model WebHostingErrorResponse
type WebHostingErrorResponse struct {
	// Error message
	// example: Required fields are missing.
	Message string `json:"message"`
}

// NewAddWebHostingUserHandler returns an HTTP handler that adds one
// hosting customer.
// @Summary Add web-hosting customer
// @Tags webhosting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addWebHostingUserRequest body handlers.AddWebHostingUserRequest true "Customer fields"
// @Success 201 {object} handlers.AddWebHostingUserResponse "Record created"
// @Failure 400 {object} handlers.WebHostingErrorResponse "Required fields missing"
// @Router /api/add-webhosting-user [post]
func NewAddWebHostingUserHandler(svc WebHostingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddWebHostingUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebHostingErrorResponse{
				Message: "Required fields are missing.",
			})
			return
		}

		user := models.WebHostingUserDB{
			UserName:       req.UserName,
			HostingType:    req.HostingType,
			TariffPlan:     req.TariffPlan,
			YearlyAmount:   coerceFloat(req.YearlyAmount),
			ActivationDate: req.ActivationDate,
			Email:          req.Email,
			ContactPerson:  req.ContactPerson,
		}

		id, err := svc.Create(r.Context(), user)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrHostingFieldsMissing):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WebHostingErrorResponse{
					Message: "Required fields are missing.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WebHostingErrorResponse{
					Message: "Database error while adding user.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddWebHostingUserResponse{
			Message: "User added successfully.",
			ID:      id,
		})
	}
}
