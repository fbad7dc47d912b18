package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// Error variables
var (
	ErrPhoneRequired       = errors.New("phone number is required")
	ErrOTPRequired         = errors.New("phone and OTP are required")
	ErrPhoneNotAuthorized  = errors.New("phone number is not authorized")
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
	ErrTooManyAttempts     = errors.New("too many failed attempts, request a new OTP")
)

// PhoneAuthorizer checks the static allow-list.
type PhoneAuthorizer interface {
	Exists(ctx context.Context, phone string) (bool, error)
}

// OTPReader looks up stored one-time codes.
type OTPReader interface {
	GetValid(ctx context.Context, phone, otp string) (*models.OTPCodeDB, error)
}

// OTPWriter stores one-time codes.
type OTPWriter interface {
	Save(ctx context.Context, phone, otp string, ttlSeconds int) error
}

// AttemptCounter tracks failed verification attempts per phone.
type AttemptCounter interface {
	Get(ctx context.Context, phone string) (int, error)
	Incr(ctx context.Context, phone string) error
	Clear(ctx context.Context, phone string) error
}

// TokenGenerator issues session tokens for authenticated phones.
type TokenGenerator interface {
	Generate(ctx context.Context, phone string) (string, error)
}

// AuthService handles OTP issuance and verification.
type AuthService struct {
	authorizer  PhoneAuthorizer
	otpReader   OTPReader
	otpWriter   OTPWriter
	attempts    AttemptCounter
	jwt         TokenGenerator
	ttlSeconds  int
	maxAttempts int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	authorizer PhoneAuthorizer,
	otpReader OTPReader,
	otpWriter OTPWriter,
	attempts AttemptCounter,
	jwt TokenGenerator,
	ttlSeconds int,
	maxAttempts int,
) *AuthService {
	return &AuthService{
		authorizer:  authorizer,
		otpReader:   otpReader,
		otpWriter:   otpWriter,
		attempts:    attempts,
		jwt:         jwt,
		ttlSeconds:  ttlSeconds,
		maxAttempts: maxAttempts,
	}
}

// generateOTP returns a uniformly random 6-digit decimal code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// RequestCode issues a fresh code for an allow-listed phone, replacing
// any previous one. There is no SMS transport; the code is only
// surfaced through the server log.
func (svc *AuthService) RequestCode(ctx context.Context, phone string) error {
	if phone == "" {
		return ErrPhoneRequired
	}

	allowed, err := svc.authorizer.Exists(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to check allow-list", "err", err)
		return err
	}
	if !allowed {
		logger.Log.Errorw("phone not authorized", "phone", phone)
		return ErrPhoneNotAuthorized
	}

	otp, err := generateOTP()
	if err != nil {
		logger.Log.Errorw("failed to generate OTP", "err", err)
		return err
	}

	if err := svc.otpWriter.Save(ctx, phone, otp, svc.ttlSeconds); err != nil {
		logger.Log.Errorw("failed to store OTP", "err", err)
		return err
	}

	// Stub delivery: operators read the code from the log.
	logger.Log.Infow("OTP issued", "phone", phone, "otp", otp)
	return nil
}

// VerifyCode checks a submitted code and returns a session token on
// success. Failures are counted; past the limit the code is not even
// compared.
func (svc *AuthService) VerifyCode(ctx context.Context, phone, otp string) (string, error) {
	if phone == "" || otp == "" {
		return "", ErrOTPRequired
	}

	count, err := svc.attempts.Get(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to read attempt counter", "err", err)
		return "", err
	}
	if count >= svc.maxAttempts {
		logger.Log.Errorw("attempt limit exceeded", "phone", phone, "attempts", count)
		return "", ErrTooManyAttempts
	}

	code, err := svc.otpReader.GetValid(ctx, phone, otp)
	if err != nil {
		logger.Log.Errorw("failed to verify OTP", "err", err)
		return "", err
	}
	if code == nil {
		if err := svc.attempts.Incr(ctx, phone); err != nil {
			logger.Log.Errorw("failed to record attempt", "err", err)
		}
		return "", ErrInvalidOrExpiredOTP
	}

	if err := svc.attempts.Clear(ctx, phone); err != nil {
		logger.Log.Errorw("failed to clear attempt counter", "err", err)
	}

	token, err := svc.jwt.Generate(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

// Login is the OTP-less path kept for the legacy client. It checks the
// allow-list and issues the same short-lived session token.
func (svc *AuthService) Login(ctx context.Context, phone string) (string, error) {
	if phone == "" {
		return "", ErrPhoneRequired
	}

	allowed, err := svc.authorizer.Exists(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to check allow-list", "err", err)
		return "", err
	}
	if !allowed {
		logger.Log.Errorw("phone not authorized", "phone", phone)
		return "", ErrPhoneNotAuthorized
	}

	token, err := svc.jwt.Generate(ctx, phone)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}
