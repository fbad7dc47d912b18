package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
)

// Tokener validates the bearer token issued at OTP login.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AuthMiddleware guards the subscriber, VM and web-hosting routes.
// Requests without a valid session token get a 401 with the same JSON
// error shape the handlers use.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				unauthorized(w, r, err)
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				unauthorized(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("authorization failed",
		"request_id", RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"err", err,
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Unauthorized: Invalid or missing token",
	})
}
