package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/repositories"
)

// Error variables
var (
	ErrUserFieldsMissing = errors.New("please fill all required fields")
	ErrUsernameExists    = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// UserReader defines read-only operations for subscribers.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	Count(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for subscribers.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (int64, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserService handles subscriber lifecycle and invoice derivation.
type UserService struct {
	reader UserReader
	writer UserWriter
	kafka  KafkaWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, kafka KafkaWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		kafka:  kafka,
	}
}

// Create inserts a new subscriber. Uniqueness is enforced by the
// database constraint, so a concurrent duplicate cannot slip through.
func (svc *UserService) Create(ctx context.Context, user models.UserDB) (int64, error) {
	if user.Username == "" || user.State == "" || user.ServiceType == "" ||
		user.Plan == "" || user.TotalAmount == 0 || user.PIDate == "" || user.InvoiceDate == "" {
		return 0, ErrUserFieldsMissing
	}

	id, err := svc.writer.Save(ctx, user)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			logger.Log.Errorw("username already exists", "username", user.Username)
			return 0, ErrUsernameExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	publishAudit(ctx, svc.kafka, "user", "created", id)
	return id, nil
}

// BulkCreate inserts entries independently. Invalid or conflicting
// entries are reported, not fatal; the batch is deliberately not
// atomic and partial success is the expected outcome.
func (svc *UserService) BulkCreate(ctx context.Context, users []models.UserDB) models.BulkResult {
	result := models.BulkResult{}

	for i, user := range users {
		if user.Username == "" {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: username is required", i+1))
			continue
		}

		id, err := svc.writer.Save(ctx, user)
		if err != nil {
			result.ErrorCount++
			if repositories.IsUniqueViolation(err) {
				result.Errors = append(result.Errors, fmt.Sprintf("username '%s' already exists", user.Username))
			} else {
				logger.Log.Errorw("bulk insert failed", "username", user.Username, "err", err)
				result.Errors = append(result.Errors, fmt.Sprintf("username '%s': insert failed", user.Username))
			}
			continue
		}

		result.SuccessCount++
		publishAudit(ctx, svc.kafka, "user", "bulk_created", id)
	}

	return result
}

// List returns all subscribers, newest first.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Count returns the total number of subscribers.
func (svc *UserService) Count(ctx context.Context) (int64, error) {
	total, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return 0, err
	}
	return total, nil
}

// GetByID returns one subscriber.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update writes the provided allow-listed fields.
func (svc *UserService) Update(ctx context.Context, id int64, upd models.UserUpdate) error {
	found, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return err
	}
	if !found {
		return ErrUserNotFound
	}

	publishAudit(ctx, svc.kafka, "user", "updated", id)
	return nil
}

// Delete removes a subscriber. Hard delete; there are no dependent rows.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	found, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !found {
		return ErrUserNotFound
	}

	publishAudit(ctx, svc.kafka, "user", "deleted", id)
	return nil
}

// Invoice fetches one subscriber and derives the invoice totals.
func (svc *UserService) Invoice(ctx context.Context, id int64) (*models.Invoice, error) {
	user, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice := ComputeInvoice(*user)
	return &invoice, nil
}
