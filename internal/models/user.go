package models

// UserDB represents a subscriber record in the database
type UserDB struct {
	ID                  int64   `json:"id" db:"id"`                                     // Primary key
	Username            string  `json:"username" db:"username"`                         // Unique subscriber name
	State               string  `json:"state" db:"state"`                               // Indian state for GST purposes
	ServiceType         string  `json:"serviceType" db:"service_type"`                  // e.g. VM Hosting, Web Hosting
	Plan                string  `json:"plan" db:"plan"`                                 // Tariff plan name
	AdditionalResources string  `json:"additionalResources" db:"additional_resources"` // Free-form extras
	TotalAmount         float64 `json:"totalAmount" db:"total_amount"`                  // Pre-tax subscription amount
	Discount            float64 `json:"discount" db:"discount"`                         // Discount percentage
	PIDate              string  `json:"piDate" db:"pi_date"`                            // Proforma invoice date (YYYY-MM-DD)
	InvoiceDate         string  `json:"invoiceDate" db:"invoice_date"`                  // Invoice date (YYYY-MM-DD)
	Address             string  `json:"address" db:"address"`                           // Billing address
	GSTIN               string  `json:"gstin" db:"gstin"`                               // GSTIN/UIN of the buyer
	NumVMs              int     `json:"numVMs" db:"num_vms"`                            // Number of provisioned VMs
}

// UserUpdate is the allow-listed field set accepted by partial updates.
// Only non-nil fields are written; unknown client keys never reach SQL.
type UserUpdate struct {
	State               *string  `json:"state"`
	ServiceType         *string  `json:"serviceType"`
	Plan                *string  `json:"plan"`
	AdditionalResources *string  `json:"additionalResources"`
	TotalAmount         *float64 `json:"totalAmount"`
	Discount            *float64 `json:"discount"`
	PIDate              *string  `json:"piDate"`
	InvoiceDate         *string  `json:"invoiceDate"`
	Address             *string  `json:"address"`
	GSTIN               *string  `json:"gstin"`
	NumVMs              *int     `json:"numVMs"`
}

// Invoice is the derived invoice view of one subscriber record.
// Nothing here is persisted; it is recomputed on every request.
type Invoice struct {
	UserDB
	DiscountAmount float64 `json:"discountAmount"` // total_amount * discount / 100
	TaxAmount      float64 `json:"taxAmount"`      // 18% GST on the discounted amount
	Payable        float64 `json:"payable"`        // total_amount * (1 - discount/100) * 1.18
}

// BulkResult reports the outcome of a non-atomic bulk insert.
type BulkResult struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors,omitempty"`
}
