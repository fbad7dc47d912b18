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

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, user models.UserDB) (int64, error)
}

// AddUserRequest represents the JSON body for creating a subscriber.
// Numeric fields accept numbers or strings, matching the portal forms.
// swagger:model AddUserRequest
type AddUserRequest struct {
	// Subscriber name, unique
	// required: true
	// example: acme_corp
	Username string `json:"username"`

	// Indian state
	// required: true
	// example: Delhi
	State string `json:"state"`

	// Service type
	// required: true
	// example: VM Hosting
	ServiceType string `json:"serviceType"`

	// Tariff plan
	// required: true
	// example: Gold
	Plan string `json:"plan"`

	// Free-form extras
	AdditionalResources string `json:"additionalResources"`

	// Pre-tax amount
	// required: true
	// example: 1000
	TotalAmount any `json:"totalAmount"`

	// Discount percentage
	// example: 10
	Discount any `json:"discount"`

	// Proforma invoice date (YYYY-MM-DD)
	// required: true
	PIDate string `json:"piDate"`

	// Invoice date (YYYY-MM-DD)
	// required: true
	InvoiceDate string `json:"invoiceDate"`

	// Billing address
	Address string `json:"address"`

	// GSTIN/UIN
	GSTIN string `json:"gstin"`

	// Number of VMs
	// example: 2
	NumVMs any `json:"numVMs"`
}

// toUserDB coerces the tolerant request fields into a database record.
func (req AddUserRequest) toUserDB() models.UserDB {
	return models.UserDB{
		Username:            req.Username,
		State:               req.State,
		ServiceType:         req.ServiceType,
		Plan:                req.Plan,
		AdditionalResources: req.AdditionalResources,
		TotalAmount:         coerceFloat(req.TotalAmount),
		Discount:            coerceFloat(req.Discount),
		PIDate:              req.PIDate,
		InvoiceDate:         req.InvoiceDate,
		Address:             req.Address,
		GSTIN:               req.GSTIN,
		NumVMs:              coerceInt(req.NumVMs),
	}
}

// AddUserResponse represents a successful creation response
// swagger:model AddUserResponse
type AddUserResponse struct {
	// Success message
	// example: User added successfully.
	Message string `json:"message"`

	// New record id, used by the client to open /invoice/:id
	// example: 42
	ID int64 `json:"id"`
}

// AddUserErrorResponse represents an error response for creation
// swagger:model AddUserErrorResponse
type AddUserErrorResponse struct {
	// Error message
	// example: Username already exists.
	Message string `json:"message"`
}

// NewAddUserHandler returns an HTTP handler that creates a subscriber.
// @Summary Add subscriber
// @Description Creates a subscriber record; the username must be unique
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addUserRequest body handlers.AddUserRequest true "Subscriber fields"
// @Success 201 {object} handlers.AddUserResponse "Record created"
// @Failure 400 {object} handlers.AddUserErrorResponse "Required fields missing"
// @Failure 409 {object} handlers.AddUserErrorResponse "Username already exists"
// @Router /api/add-user [post]
func NewAddUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddUserErrorResponse{
				Message: "Please fill all required fields.",
			})
			return
		}

		id, err := svc.Create(r.Context(), req.toUserDB())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserFieldsMissing):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AddUserErrorResponse{
					Message: "Please fill all required fields.",
				})
			case errors.Is(err, services.ErrUsernameExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(AddUserErrorResponse{
					Message: "Username already exists.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AddUserErrorResponse{
					Message: "Failed to insert user.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddUserResponse{
			Message: "User added successfully.",
			ID:      id,
		})
	}
}
