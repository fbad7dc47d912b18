package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// WebHostingLister defines the interface that the service must implement.
type WebHostingLister interface {
	List(ctx context.Context) ([]models.WebHostingUserDB, error)
}

// NewWebHostingUsersHandler returns an HTTP handler listing all
// hosting customers.
// @Summary List web-hosting customers
// @Tags webhosting
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.WebHostingUserDB "All customer records"
// @Failure 500 {object} handlers.WebHostingErrorResponse "Store failure"
// @Router /api/webhosting-users [get]
func NewWebHostingUsersHandler(svc WebHostingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WebHostingErrorResponse{
				Message: "Failed to fetch users.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
