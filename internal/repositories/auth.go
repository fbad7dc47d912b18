package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// AuthorizedUserReadRepository reads the static phone allow-list.
type AuthorizedUserReadRepository struct {
	db *sqlx.DB
}

func NewAuthorizedUserReadRepository(db *sqlx.DB) *AuthorizedUserReadRepository {
	return &AuthorizedUserReadRepository{db: db}
}

// Exists reports whether a phone number is allow-listed.
func (r *AuthorizedUserReadRepository) Exists(ctx context.Context, phone string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM authorized_users WHERE phone = $1
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, phone)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{phone},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// OTPWriteRepository stores one-time codes, one row per phone.
type OTPWriteRepository struct {
	db *sqlx.DB
}

func NewOTPWriteRepository(db *sqlx.DB) *OTPWriteRepository {
	return &OTPWriteRepository{db: db}
}

// Save upserts the active code for a phone. Any previous code for the
// same phone is overwritten, not superseded.
func (r *OTPWriteRepository) Save(ctx context.Context, phone, otp string, ttlSeconds int) error {
	query := `
		INSERT INTO otp_codes (username, otp, created_at, expiry_time)
		VALUES ($1, $2, NOW(), NOW() + make_interval(secs => $3))
		ON CONFLICT (username) DO UPDATE
		SET otp = EXCLUDED.otp,
		    created_at = NOW(),
		    expiry_time = NOW() + make_interval(secs => $3)
	`
	args := []any{phone, otp, ttlSeconds}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{phone, "<otp>", ttlSeconds},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// OTPReadRepository looks up stored one-time codes.
type OTPReadRepository struct {
	db *sqlx.DB
}

func NewOTPReadRepository(db *sqlx.DB) *OTPReadRepository {
	return &OTPReadRepository{db: db}
}

// GetValid returns the newest unexpired row matching phone and code,
// or nil when no such row exists.
func (r *OTPReadRepository) GetValid(ctx context.Context, phone, otp string) (*models.OTPCodeDB, error) {
	const query = `
		SELECT username, otp, created_at, expiry_time
		FROM otp_codes
		WHERE username = $1 AND otp = $2 AND expiry_time >= NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var code models.OTPCodeDB
	err := r.db.GetContext(ctx, &code, query, phone, otp)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{phone, "<otp>"},
		"result", code.Username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &code, nil
}
