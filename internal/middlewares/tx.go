package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
)

// TxMiddleware opens a transaction per request and hands it to the
// repositories through the context. The transaction commits only when the
// handler reports success; an error status (4xx/5xx) or a panic rolls it
// back, so a failed subscriber update leaves no partial writes behind.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction",
					"request_id", RequestIDFromContext(r.Context()),
					"error", err,
				)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(setTxToContext(r.Context(), tx))

			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction",
						"request_id", RequestIDFromContext(r.Context()),
						"status", rw.statusCode,
						"error", err,
					)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction",
					"request_id", RequestIDFromContext(r.Context()),
					"error", err,
				)
				if !rw.wroteHeader {
					rw.WriteHeader(http.StatusInternalServerError)
				}
				return
			}
		})
	}
}

type contextKey struct{}

var txKey = contextKey{}

func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the request transaction. Returns nil when the
// route is not wrapped in TxMiddleware.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
