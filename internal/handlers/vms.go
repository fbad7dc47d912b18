package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// VMLister defines the interface that the service must implement.
type VMLister interface {
	List(ctx context.Context) ([]models.VMDB, error)
}

// VMCounter defines the interface that the service must implement.
type VMCounter interface {
	Count(ctx context.Context) (int64, error)
}

// VMsResponse wraps the VM listing
// swagger:model VMsResponse
type VMsResponse struct {
	// All VM records, newest first
	VMs []models.VMDB `json:"vms"`
}

// VMCountResponse represents the VM count
// swagger:model VMCountResponse
type VMCountResponse struct {
	// Total rows
	// example: 12
	Total int64 `json:"total"`
}

// NewVMsHandler returns an HTTP handler listing the VM inventory.
// @Summary List VMs
// @Description Returns all VM records, newest first, with passwords opened
// @Tags vms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.VMsResponse "VM inventory"
// @Failure 500 {object} handlers.VMErrorResponse "Store failure"
// @Router /api/vms [get]
func NewVMsHandler(svc VMLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vms, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(VMErrorResponse{
				Message: "Failed to fetch VM details",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VMsResponse{VMs: vms})
	}
}

// NewVMCountHandler returns an HTTP handler for the VM count.
// @Summary Count VMs
// @Tags vms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.VMCountResponse "Total row count"
// @Failure 500 {object} handlers.VMErrorResponse "Store failure"
// @Router /api/vm-count [get]
func NewVMCountHandler(svc VMCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.Count(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(VMErrorResponse{
				Message: "Failed to fetch VM count",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VMCountResponse{Total: total})
	}
}
