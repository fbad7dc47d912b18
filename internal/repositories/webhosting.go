package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// WebHostingReadRepository handles web-hosting customer read operations
type WebHostingReadRepository struct {
	db *sqlx.DB
}

func NewWebHostingReadRepository(db *sqlx.DB) *WebHostingReadRepository {
	return &WebHostingReadRepository{db: db}
}

// List returns all web-hosting customers, newest first.
func (r *WebHostingReadRepository) List(ctx context.Context) ([]models.WebHostingUserDB, error) {
	const query = `
		SELECT id, user_name, hosting_type, tariff_plan, yearly_amount,
		       activation_date, email, contact_person
		FROM web_hosting_users
		ORDER BY id DESC
	`

	users := []models.WebHostingUserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, err
}

// WebHostingWriteRepository handles web-hosting customer write operations
type WebHostingWriteRepository struct {
	db *sqlx.DB
}

func NewWebHostingWriteRepository(db *sqlx.DB) *WebHostingWriteRepository {
	return &WebHostingWriteRepository{db: db}
}

// Save inserts a web-hosting customer and returns its id.
func (r *WebHostingWriteRepository) Save(ctx context.Context, user models.WebHostingUserDB) (int64, error) {
	query := `
		INSERT INTO web_hosting_users
		(user_name, hosting_type, tariff_plan, yearly_amount, activation_date, email, contact_person)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	args := []any{
		user.UserName, user.HostingType, user.TariffPlan, user.YearlyAmount,
		user.ActivationDate, user.Email, user.ContactPerson,
	}

	var id int64
	err := sqlx.GetContext(ctx, r.db, &id, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}
