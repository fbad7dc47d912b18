package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// Error variables
var (
	ErrVMFieldsMissing = errors.New("missing required fields")
)

// VMReader defines read-only operations for the VM inventory.
type VMReader interface {
	List(ctx context.Context) ([]models.VMDB, error)
	Count(ctx context.Context) (int64, error)
}

// VMWriter defines write operations for the VM inventory.
type VMWriter interface {
	Save(ctx context.Context, vm models.VMDB) (int64, error)
}

// PasswordSealer protects VM passwords at rest.
type PasswordSealer interface {
	Seal(plaintext string) (string, error)
	Open(ciphertext string) (string, error)
}

// VMService handles the VM inventory.
type VMService struct {
	reader VMReader
	writer VMWriter
	sealer PasswordSealer
	kafka  KafkaWriter
}

// NewVMService creates a new VMService instance.
func NewVMService(reader VMReader, writer VMWriter, sealer PasswordSealer, kafka KafkaWriter) *VMService {
	return &VMService{
		reader: reader,
		writer: writer,
		sealer: sealer,
		kafka:  kafka,
	}
}

// Create inserts a VM record with the password sealed before it
// touches the database.
func (svc *VMService) Create(ctx context.Context, vm models.VMDB) (int64, error) {
	if vm.Hostname == "" || vm.Core == "" || vm.RAM == "" || vm.Storage == "" || vm.OS == "" {
		return 0, ErrVMFieldsMissing
	}

	if vm.Password != "" {
		sealed, err := svc.sealer.Seal(vm.Password)
		if err != nil {
			logger.Log.Errorw("failed to seal VM password", "hostname", vm.Hostname, "err", err)
			return 0, err
		}
		vm.Password = sealed
	}

	id, err := svc.writer.Save(ctx, vm)
	if err != nil {
		logger.Log.Errorw("failed to save VM", "hostname", vm.Hostname, "err", err)
		return 0, err
	}

	publishAudit(ctx, svc.kafka, "vm", "created", id)
	return id, nil
}

// BulkCreate inserts entries independently; entries without a hostname
// are skipped and reported. Not atomic.
func (svc *VMService) BulkCreate(ctx context.Context, vms []models.VMDB) models.BulkResult {
	result := models.BulkResult{}

	for i, vm := range vms {
		if vm.Hostname == "" {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: hostname is required", i+1))
			continue
		}

		if vm.Password != "" {
			sealed, err := svc.sealer.Seal(vm.Password)
			if err != nil {
				result.ErrorCount++
				result.Errors = append(result.Errors, fmt.Sprintf("hostname '%s': failed to seal password", vm.Hostname))
				continue
			}
			vm.Password = sealed
		}

		id, err := svc.writer.Save(ctx, vm)
		if err != nil {
			logger.Log.Errorw("bulk insert failed", "hostname", vm.Hostname, "err", err)
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("hostname '%s': insert failed", vm.Hostname))
			continue
		}

		result.SuccessCount++
		publishAudit(ctx, svc.kafka, "vm", "bulk_created", id)
	}

	return result
}

// List returns the inventory with passwords opened for display.
func (svc *VMService) List(ctx context.Context) ([]models.VMDB, error) {
	vms, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list VMs", "err", err)
		return nil, err
	}

	for i := range vms {
		if vms[i].Password == "" {
			continue
		}
		opened, err := svc.sealer.Open(vms[i].Password)
		if err != nil {
			// Legacy rows may predate sealing; leave them untouched.
			logger.Log.Warnw("failed to open VM password", "hostname", vms[i].Hostname, "err", err)
			continue
		}
		vms[i].Password = opened
	}

	return vms, nil
}

// Count returns the total number of VMs.
func (svc *VMService) Count(ctx context.Context) (int64, error) {
	total, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count VMs", "err", err)
		return 0, err
	}
	return total, nil
}
