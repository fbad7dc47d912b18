package models

import "time"

// AuthorizedUserDB represents a row in the static phone allow-list.
// Rows are provisioned out-of-band; this service only reads them.
type AuthorizedUserDB struct {
	Phone string `json:"phone" db:"phone"` // Unique phone number
}

// OTPCodeDB represents the single active one-time code for a phone number.
// The table is keyed by username (the phone), so issuing a new code
// overwrites the previous one.
type OTPCodeDB struct {
	Username   string    `json:"username" db:"username"`       // Phone number the code is bound to
	OTP        string    `json:"otp" db:"otp"`                 // 6-digit code
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Issue timestamp
	ExpiryTime time.Time `json:"expiry_time" db:"expiry_time"` // CreatedAt + TTL
}
