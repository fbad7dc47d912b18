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

// VMCreator defines the interface that the service must implement.
type VMCreator interface {
	Create(ctx context.Context, vm models.VMDB) (int64, error)
}

// AddVMRequest represents the JSON body for adding a VM
// swagger:model AddVMRequest
type AddVMRequest struct {
	// VM hostname
	// required: true
	// example: web-01
	Hostname string `json:"hostname"`

	// vCPU allocation
	// required: true
	// example: 4
	Core string `json:"core"`

	// Memory allocation
	// required: true
	// example: 8GB
	RAM string `json:"ram"`

	// Disk allocation
	// required: true
	// example: 100GB
	Storage string `json:"storage"`

	// Billing plan
	TariffPlan string `json:"tariffPlan"`

	// Operating system image
	// required: true
	// example: Ubuntu 22.04
	OS string `json:"os"`

	// Internal address
	PrivateIP string `json:"privateIp"`

	// External address
	PublicIP string `json:"publicIp"`

	// Root password, sealed before storage
	Password string `json:"password"`

	// Hosted site, if any
	WebsiteName string `json:"websiteName"`

	// Customer contact number
	ContactNo string `json:"contactNo"`
}

func (req AddVMRequest) toVMDB() models.VMDB {
	return models.VMDB{
		Hostname:    req.Hostname,
		Core:        req.Core,
		RAM:         req.RAM,
		Storage:     req.Storage,
		TariffPlan:  req.TariffPlan,
		OS:          req.OS,
		PrivateIP:   req.PrivateIP,
		PublicIP:    req.PublicIP,
		Password:    req.Password,
		WebsiteName: req.WebsiteName,
		ContactNo:   req.ContactNo,
	}
}

// AddVMResponse represents a successful VM creation
// swagger:model AddVMResponse
type AddVMResponse struct {
	// Success message
	// example: VM details added successfully
	Message string `json:"message"`

	// New record id
	// example: 7
	ID int64 `json:"id"`
}

// VMErrorResponse represents an error response for VM operations
// swagger:model VMErrorResponse
type VMErrorResponse struct {
	// Error message
	// example: Missing required fields
	Message string `json:"message"`
}

// NewAddVMHandler returns an HTTP handler that adds one VM.
// @Summary Add VM
// @Description Adds a VM to the inventory; the password is sealed at rest
// @Tags vms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param addVMRequest body handlers.AddVMRequest true "VM fields"
// @Success 201 {object} handlers.AddVMResponse "Record created"
// @Failure 400 {object} handlers.VMErrorResponse "Required fields missing"
// @Router /api/add-vm [post]
func NewAddVMHandler(svc VMCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddVMRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VMErrorResponse{
				Message: "Missing required fields",
			})
			return
		}

		id, err := svc.Create(r.Context(), req.toVMDB())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrVMFieldsMissing):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VMErrorResponse{
					Message: "Missing required fields",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VMErrorResponse{
					Message: "Failed to insert VM details",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AddVMResponse{
			Message: "VM details added successfully",
			ID:      id,
		})
	}
}
