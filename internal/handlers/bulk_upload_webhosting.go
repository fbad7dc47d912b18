package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

// WebHostingImporter defines the interface that the service must implement.
type WebHostingImporter interface {
	ImportXLSX(ctx context.Context, path string) (int, error)
}

// BulkUploadResponse reports the outcome of an Excel import
// swagger:model BulkUploadResponse
type BulkUploadResponse struct {
	// Success message
	// example: Bulk upload successful!
	Message string `json:"message"`

	// Rows inserted
	// example: 25
	Count int `json:"count"`
}

// maxUploadSize caps spreadsheet uploads at 10 MiB.
const maxUploadSize = 10 << 20

// NewBulkUploadWebHostingHandler returns an HTTP handler that imports
// hosting customers from an uploaded .xlsx workbook. The upload is
// written to a temporary file which is removed whatever the outcome.
// @Summary Bulk upload web-hosting customers
// @Description Imports rows from the first sheet of an uploaded .xlsx file
// @Tags webhosting
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Excel workbook"
// @Success 200 {object} handlers.BulkUploadResponse "Rows imported"
// @Failure 400 {object} handlers.WebHostingErrorResponse "Missing file or no valid rows"
// @Router /api/bulk-upload-webhosting [post]
func NewBulkUploadWebHostingHandler(svc WebHostingImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebHostingErrorResponse{
				Message: "No file uploaded.",
			})
			return
		}
		defer file.Close()

		tmp, err := os.CreateTemp("", "webhosting-*.xlsx")
		if err != nil {
			logger.Log.Errorw("failed to create temp file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WebHostingErrorResponse{
				Message: "Failed to process Excel file.",
			})
			return
		}
		defer os.Remove(tmp.Name())

		if _, err := io.Copy(tmp, file); err != nil {
			tmp.Close()
			logger.Log.Errorw("failed to spool upload", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WebHostingErrorResponse{
				Message: "Failed to process Excel file.",
			})
			return
		}
		tmp.Close()

		count, err := svc.ImportXLSX(r.Context(), tmp.Name())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWorkbookEmpty):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WebHostingErrorResponse{
					Message: "Excel file is empty.",
				})
			case errors.Is(err, services.ErrNoValidRows):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WebHostingErrorResponse{
					Message: "No valid rows found in Excel.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WebHostingErrorResponse{
					Message: "Failed to process Excel file.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BulkUploadResponse{
			Message: "Bulk upload successful!",
			Count:   count,
		})
	}
}
