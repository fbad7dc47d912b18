package models

import "time"

// VMDB represents a provisioned virtual machine in the inventory.
// Password holds the sealed ciphertext in the database; the service
// layer opens it before returning records to callers.
type VMDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	Hostname    string    `json:"hostname" db:"hostname"`         // VM hostname
	Core        string    `json:"core" db:"core"`                 // vCPU allocation
	RAM         string    `json:"ram" db:"ram"`                   // Memory allocation
	Storage     string    `json:"storage" db:"storage"`           // Disk allocation
	TariffPlan  string    `json:"tariffPlan" db:"tariff_plan"`    // Billing plan
	OS          string    `json:"os" db:"os"`                     // Operating system image
	PrivateIP   string    `json:"privateIp" db:"private_ip"`      // Internal address
	PublicIP    string    `json:"publicIp" db:"public_ip"`        // External address
	Password    string    `json:"password" db:"password"`         // Root password, sealed at rest
	WebsiteName string    `json:"websiteName" db:"website_name"`  // Hosted site, if any
	ContactNo   string    `json:"contactNo" db:"contact_no"`      // Customer contact number
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`      // Provisioning timestamp
}
