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

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, upd models.UserUpdate) error
}

// UpdateUserResponse represents a successful update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success message
	// example: User updated successfully.
	Message string `json:"message"`
}

// NewUpdateUserHandler returns an HTTP handler for partial updates.
// Only the allow-listed fields of UserUpdate are accepted; unknown
// client keys are dropped by the decoder and never reach the database.
// @Summary Update subscriber
// @Description Writes the provided allow-listed fields of one record
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Param userUpdate body models.UserUpdate true "Fields to write"
// @Success 200 {object} handlers.UpdateUserResponse "Record updated"
// @Failure 404 {object} handlers.UserErrorResponse "Unknown id"
// @Router /api/user/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "User not found.",
			})
			return
		}

		var upd models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "Invalid request body.",
			})
			return
		}

		if err := svc.Update(r.Context(), id, upd); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{
					Message: "User not found.",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "Failed to update user.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateUserResponse{
			Message: "User updated successfully.",
		})
	}
}
