package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
)

// OTPAttemptRepository counts failed verification attempts per phone in
// Redis so a live code cannot be brute forced inside its window.
type OTPAttemptRepository struct {
	client *redis.Client
	exp    time.Duration // window after which the counter resets
}

// NewOTPAttemptRepository creates a repository with the given counter window.
func NewOTPAttemptRepository(client *redis.Client, expiration time.Duration) *OTPAttemptRepository {
	return &OTPAttemptRepository{
		client: client,
		exp:    expiration,
	}
}

func attemptKey(phone string) string {
	return fmt.Sprintf("otp_attempts:%s", phone)
}

// Get returns the current failed-attempt count for a phone.
func (r *OTPAttemptRepository) Get(ctx context.Context, phone string) (int, error) {
	key := attemptKey(phone)

	val, err := r.client.Get(ctx, key).Int()
	if err == redis.Nil {
		logger.Log.Infow(
			"key", key,
			"result", 0,
			"error", nil,
		)
		return 0, nil
	}

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	return val, err
}

// Incr records one failed attempt and arms the reset window on the first.
func (r *OTPAttemptRepository) Incr(ctx context.Context, phone string) error {
	key := attemptKey(phone)

	count, err := r.client.Incr(ctx, key).Result()
	if err == nil && count == 1 {
		err = r.client.Expire(ctx, key, r.exp).Err()
	}

	logger.Log.Infow(
		"key", key,
		"result", count,
		"error", err,
	)

	return err
}

// Clear drops the counter, used after a successful verification.
func (r *OTPAttemptRepository) Clear(ctx context.Context, phone string) error {
	key := attemptKey(phone)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
