package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// UserBulkCreator defines the interface that the service must implement.
type UserBulkCreator interface {
	BulkCreate(ctx context.Context, users []models.UserDB) models.BulkResult
}

// BulkAddUsersRequest represents the JSON body for bulk subscriber creation
// swagger:model BulkAddUsersRequest
type BulkAddUsersRequest struct {
	// Subscriber entries, processed independently
	Users []AddUserRequest `json:"users"`
}

// BulkAddUsersResponse reports per-entry outcomes of a bulk insert
// swagger:model BulkAddUsersResponse
type BulkAddUsersResponse struct {
	// Summary message
	// example: Bulk insert completed
	Message string `json:"message"`

	// Entries inserted
	SuccessCount int `json:"successCount"`

	// Entries skipped
	ErrorCount int `json:"errorCount"`

	// One message per skipped entry
	Errors []string `json:"errors,omitempty"`
}

// NewBulkAddUsersHandler returns an HTTP handler for bulk subscriber
// creation. The batch is not atomic: valid entries are inserted and
// invalid ones reported.
// @Summary Bulk add subscribers
// @Description Inserts each entry independently and reports per-entry errors
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bulkAddUsersRequest body handlers.BulkAddUsersRequest true "Subscriber entries"
// @Success 200 {object} handlers.BulkAddUsersResponse "Per-entry outcome"
// @Failure 400 {object} handlers.AddUserErrorResponse "No entries provided"
// @Router /api/bulk-add-users [post]
func NewBulkAddUsersHandler(svc UserBulkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkAddUsersRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Users) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AddUserErrorResponse{
				Message: "No user data provided",
			})
			return
		}

		users := make([]models.UserDB, 0, len(req.Users))
		for _, entry := range req.Users {
			users = append(users, entry.toUserDB())
		}

		result := svc.BulkCreate(r.Context(), users)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BulkAddUsersResponse{
			Message:      "Bulk insert completed",
			SuccessCount: result.SuccessCount,
			ErrorCount:   result.ErrorCount,
			Errors:       result.Errors,
		})
	}
}
