package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteUserResponse represents a successful deletion response
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// example: User deleted successfully.
	Message string `json:"message"`
}

// NewDeleteUserHandler returns an HTTP handler for hard deletes.
// @Summary Delete subscriber
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} handlers.DeleteUserResponse "Record removed"
// @Failure 404 {object} handlers.UserErrorResponse "Unknown id"
// @Router /api/user/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "User not found.",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
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
				Message: "Failed to delete user.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{
			Message: "User deleted successfully.",
		})
	}
}
