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

// InvoiceGetter defines the interface that the service must implement.
type InvoiceGetter interface {
	Invoice(ctx context.Context, id int64) (*models.Invoice, error)
}

// InvoiceErrorResponse represents an error response for invoice reads
// swagger:model InvoiceErrorResponse
type InvoiceErrorResponse struct {
	// Error message
	// example: Invoice not found.
	Message string `json:"message"`
}

// NewInvoiceHandler returns an HTTP handler that renders the derived
// invoice for one subscriber. Totals are recomputed on every view.
// @Summary Get invoice
// @Description Returns the subscriber record with derived discount and GST totals
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record id"
// @Success 200 {object} models.Invoice "Invoice view"
// @Failure 404 {object} handlers.InvoiceErrorResponse "Unknown id"
// @Router /api/invoice/{id} [get]
func NewInvoiceHandler(svc InvoiceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(InvoiceErrorResponse{
				Message: "Invoice not found.",
			})
			return
		}

		invoice, err := svc.Invoice(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(InvoiceErrorResponse{
					Message: "Invoice not found.",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(InvoiceErrorResponse{
				Message: "Database error fetching invoice.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(invoice)
	}
}
