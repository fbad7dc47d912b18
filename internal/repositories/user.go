package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The duplicate-username guard is the constraint itself, not
// a prior SELECT, so concurrent creates cannot race past it.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// UserReadRepository handles subscriber read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `id, username, state, service_type, plan, additional_resources,
	total_amount, discount, pi_date, invoice_date, address, gstin, num_vms`

// GetByID returns one subscriber, or nil when the id does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", user.Username,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all subscribers, newest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY id DESC`, userColumns)

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	return users, err
}

// Count returns the total number of subscriber rows.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	return total, err
}

// ExistsByUsername reports whether a subscriber with that username exists.
func (r *UserReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// UserWriteRepository handles subscriber write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new subscriber and returns its id. A duplicate
// username surfaces as a unique violation from the constraint.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) (int64, error) {
	query := `
		INSERT INTO users
		(username, state, service_type, plan, additional_resources, total_amount,
		 discount, pi_date, invoice_date, address, gstin, num_vms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	args := []any{
		user.Username, user.State, user.ServiceType, user.Plan,
		user.AdditionalResources, user.TotalAmount, user.Discount,
		user.PIDate, user.InvoiceDate, user.Address, user.GSTIN, user.NumVMs,
	}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

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

// Update writes only the non-nil fields of upd and reports whether the
// row existed. The SET clause is built from this fixed allow-list, so
// arbitrary client keys never become columns.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (bool, error) {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.State != nil {
		add("state", *upd.State)
	}
	if upd.ServiceType != nil {
		add("service_type", *upd.ServiceType)
	}
	if upd.Plan != nil {
		add("plan", *upd.Plan)
	}
	if upd.AdditionalResources != nil {
		add("additional_resources", *upd.AdditionalResources)
	}
	if upd.TotalAmount != nil {
		add("total_amount", *upd.TotalAmount)
	}
	if upd.Discount != nil {
		add("discount", *upd.Discount)
	}
	if upd.PIDate != nil {
		add("pi_date", *upd.PIDate)
	}
	if upd.InvoiceDate != nil {
		add("invoice_date", *upd.InvoiceDate)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if upd.GSTIN != nil {
		add("gstin", *upd.GSTIN)
	}
	if upd.NumVMs != nil {
		add("num_vms", *upd.NumVMs)
	}

	if len(sets) == 0 {
		// Nothing to write; still report whether the row exists.
		var exists bool
		err := sqlx.GetContext(ctx, r.executor(ctx), &exists,
			`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
		return exists, err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes a subscriber and reports whether the row existed.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
