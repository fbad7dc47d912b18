package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// VMReadRepository handles VM inventory read operations
type VMReadRepository struct {
	db *sqlx.DB
}

func NewVMReadRepository(db *sqlx.DB) *VMReadRepository {
	return &VMReadRepository{db: db}
}

// List returns all VMs, newest first.
func (r *VMReadRepository) List(ctx context.Context) ([]models.VMDB, error) {
	const query = `
		SELECT id, hostname, core, ram, storage, tariff_plan, os,
		       private_ip, public_ip, password, website_name, contact_no, created_at
		FROM vm_details
		ORDER BY created_at DESC
	`

	vms := []models.VMDB{}
	err := r.db.SelectContext(ctx, &vms, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(vms),
		"error", err,
	)

	return vms, err
}

// Count returns the total number of VM rows.
func (r *VMReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM vm_details`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	return total, err
}

// VMWriteRepository handles VM inventory write operations
type VMWriteRepository struct {
	db *sqlx.DB
}

func NewVMWriteRepository(db *sqlx.DB) *VMWriteRepository {
	return &VMWriteRepository{db: db}
}

// Save inserts a VM record and returns its id. Password must already be
// sealed by the caller.
func (r *VMWriteRepository) Save(ctx context.Context, vm models.VMDB) (int64, error) {
	query := `
		INSERT INTO vm_details
		(hostname, core, ram, storage, tariff_plan, os,
		 private_ip, public_ip, password, website_name, contact_no, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id
	`
	args := []any{
		vm.Hostname, vm.Core, vm.RAM, vm.Storage, vm.TariffPlan, vm.OS,
		vm.PrivateIP, vm.PublicIP, vm.Password, vm.WebsiteName, vm.ContactNo,
	}

	var id int64
	err := sqlx.GetContext(ctx, r.db, &id, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{vm.Hostname, vm.Core, vm.RAM, vm.Storage, vm.TariffPlan, vm.OS, vm.PrivateIP, vm.PublicIP, "<sealed>", vm.WebsiteName, vm.ContactNo},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}
