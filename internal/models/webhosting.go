package models

// WebHostingUserDB represents a web-hosting customer record.
type WebHostingUserDB struct {
	ID             int64   `json:"id" db:"id"`                           // Primary key
	UserName       string  `json:"user_name" db:"user_name"`             // Customer name
	HostingType    string  `json:"hosting_type" db:"hosting_type"`       // Shared, dedicated, email etc.
	TariffPlan     string  `json:"tariff_plan" db:"tariff_plan"`         // Billing plan
	YearlyAmount   float64 `json:"yearly_amount" db:"yearly_amount"`     // Annual charge
	ActivationDate string  `json:"activation_date" db:"activation_date"` // YYYY-MM-DD
	Email          string  `json:"email" db:"email"`                     // Contact email
	ContactPerson  string  `json:"contact_person" db:"contact_person"`   // Contact person
}
