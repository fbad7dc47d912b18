package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// VMBulkCreator defines the interface that the service must implement.
type VMBulkCreator interface {
	BulkCreate(ctx context.Context, vms []models.VMDB) models.BulkResult
}

// BulkAddVMsRequest represents the JSON body for bulk VM creation
// swagger:model BulkAddVMsRequest
type BulkAddVMsRequest struct {
	// VM entries, processed independently
	VMs []AddVMRequest `json:"vms"`
}

// BulkAddVMsResponse reports per-entry outcomes of a bulk insert
// swagger:model BulkAddVMsResponse
type BulkAddVMsResponse struct {
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

// NewBulkAddVMsHandler returns an HTTP handler for bulk VM creation.
// @Summary Bulk add VMs
// @Description Inserts each entry independently and reports per-entry errors
// @Tags vms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bulkAddVMsRequest body handlers.BulkAddVMsRequest true "VM entries"
// @Success 200 {object} handlers.BulkAddVMsResponse "Per-entry outcome"
// @Failure 400 {object} handlers.VMErrorResponse "No entries provided"
// @Router /api/bulk-add-vms [post]
func NewBulkAddVMsHandler(svc VMBulkCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkAddVMsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.VMs) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VMErrorResponse{
				Message: "No VM data provided",
			})
			return
		}

		vms := make([]models.VMDB, 0, len(req.VMs))
		for _, entry := range req.VMs {
			vms = append(vms, entry.toVMDB())
		}

		result := svc.BulkCreate(r.Context(), vms)

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BulkAddVMsResponse{
			Message:      "Bulk insert completed",
			SuccessCount: result.SuccessCount,
			ErrorCount:   result.ErrorCount,
			Errors:       result.Errors,
		})
	}
}
