package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// coerceFloat mirrors the tolerant form handling of the portal client:
// numbers arrive as JSON numbers or strings, and garbage falls back to
// zero instead of rejecting the request.
func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceInt is the integer counterpart of coerceFloat.
func coerceInt(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// idParam extracts the {id} route parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
