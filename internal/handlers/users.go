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

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserCounter defines the interface that the service must implement.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserCountResponse represents the subscriber count
// swagger:model UserCountResponse
type UserCountResponse struct {
	// Total rows
	// example: 128
	Total int64 `json:"total"`
}

// UserErrorResponse represents an error response for subscriber reads
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// example: Error fetching users.
	Message string `json:"message"`
}

// NewUsersHandler returns an HTTP handler listing all subscribers.
// @Summary List subscribers
// @Description Returns all subscriber records, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserDB "All subscriber records"
// @Failure 500 {object} handlers.UserErrorResponse "Store failure"
// @Router /api/users [get]
func NewUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "Error fetching users.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

// NewUserCountHandler returns an HTTP handler for the subscriber count.
// @Summary Count subscribers
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserCountResponse "Total row count"
// @Failure 500 {object} handlers.UserErrorResponse "Store failure"
// @Router /api/user-count [get]
func NewUserCountHandler(svc UserCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "Error fetching user count.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserCountResponse{Total: total})
	}
}

// NewGetUserHandler returns an HTTP handler fetching one subscriber.
// @Summary Get subscriber
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.UserDB "Subscriber record"
// @Failure 404 {object} handlers.UserErrorResponse "Unknown id"
// @Router /api/user/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UserErrorResponse{
				Message: "User not found.",
			})
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
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
				Message: "Error fetching user.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
