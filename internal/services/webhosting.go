package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
)

// Error variables
var (
	ErrHostingFieldsMissing = errors.New("required fields are missing")
	ErrWorkbookEmpty        = errors.New("excel file is empty")
	ErrNoValidRows          = errors.New("no valid rows found in excel")
)

// WebHostingReader defines read-only operations for hosting customers.
type WebHostingReader interface {
	List(ctx context.Context) ([]models.WebHostingUserDB, error)
}

// WebHostingWriter defines write operations for hosting customers.
type WebHostingWriter interface {
	Save(ctx context.Context, user models.WebHostingUserDB) (int64, error)
}

// WebHostingService handles web-hosting customers and the Excel import.
type WebHostingService struct {
	reader WebHostingReader
	writer WebHostingWriter
	kafka  KafkaWriter
}

// NewWebHostingService creates a new WebHostingService instance.
func NewWebHostingService(reader WebHostingReader, writer WebHostingWriter, kafka KafkaWriter) *WebHostingService {
	return &WebHostingService{
		reader: reader,
		writer: writer,
		kafka:  kafka,
	}
}

// Create inserts a single hosting customer.
func (svc *WebHostingService) Create(ctx context.Context, user models.WebHostingUserDB) (int64, error) {
	if user.UserName == "" || user.HostingType == "" || user.TariffPlan == "" ||
		user.YearlyAmount == 0 || user.ActivationDate == "" {
		return 0, ErrHostingFieldsMissing
	}

	id, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save web hosting user", "user_name", user.UserName, "err", err)
		return 0, err
	}

	publishAudit(ctx, svc.kafka, "webhosting_user", "created", id)
	return id, nil
}

// List returns all hosting customers.
func (svc *WebHostingService) List(ctx context.Context) ([]models.WebHostingUserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list web hosting users", "err", err)
		return nil, err
	}
	return users, nil
}

// headerAliases maps spreadsheet column spellings that appeared across
// historical exports to canonical field names.
var headerAliases = map[string]string{
	"user_name":       "user_name",
	"username":        "user_name",
	"name":            "user_name",
	"hosting_type":    "hosting_type",
	"type":            "hosting_type",
	"tariff_plan":     "tariff_plan",
	"plan":            "tariff_plan",
	"yearly_amount":   "yearly_amount",
	"amount":          "yearly_amount",
	"activation_date": "activation_date",
	"date":            "activation_date",
	"email":           "email",
	"contact_person":  "contact_person",
	"contact":         "contact_person",
}

func canonicalHeader(h string) string {
	key := strings.ToLower(strings.TrimSpace(h))
	key = strings.ReplaceAll(key, " ", "_")
	return headerAliases[key]
}

// parseCellDate normalizes a spreadsheet cell to YYYY-MM-DD. Numeric
// values are 1900-epoch day serials (serial 25569 = 1970-01-01).
func parseCellDate(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		t := time.Unix(int64((serial-25569)*86400), 0).UTC()
		return t.Format("2006-01-02")
	}

	for _, layout := range []string{"2006-01-02", "01-02-06", "1/2/06", "01/02/2006", "2006/01/02"} {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return cell
}

// ImportXLSX reads the first sheet of a workbook and inserts one row
// per valid entry. Rows without a user name are skipped. The caller
// owns the uploaded file and removes it whatever the outcome.
func (svc *WebHostingService) ImportXLSX(ctx context.Context, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		logger.Log.Errorw("failed to open workbook", "path", path, "err", err)
		return 0, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, ErrWorkbookEmpty
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		logger.Log.Errorw("failed to read sheet", "sheet", sheets[0], "err", err)
		return 0, err
	}
	if len(rows) < 2 {
		return 0, ErrWorkbookEmpty
	}

	// First row is the header; tolerate historical spellings.
	columns := map[int]string{}
	for i, h := range rows[0] {
		if field := canonicalHeader(h); field != "" {
			columns[i] = field
		}
	}

	inserted := 0
	for _, row := range rows[1:] {
		user := models.WebHostingUserDB{}
		for i, cell := range row {
			switch columns[i] {
			case "user_name":
				user.UserName = strings.TrimSpace(cell)
			case "hosting_type":
				user.HostingType = strings.TrimSpace(cell)
			case "tariff_plan":
				user.TariffPlan = strings.TrimSpace(cell)
			case "yearly_amount":
				user.YearlyAmount, _ = strconv.ParseFloat(strings.TrimSpace(cell), 64)
			case "activation_date":
				user.ActivationDate = parseCellDate(cell)
			case "email":
				user.Email = strings.TrimSpace(cell)
			case "contact_person":
				user.ContactPerson = strings.TrimSpace(cell)
			}
		}

		if user.UserName == "" {
			continue
		}

		if _, err := svc.writer.Save(ctx, user); err != nil {
			logger.Log.Errorw("import insert failed", "user_name", user.UserName, "err", err)
			continue
		}
		inserted++
	}

	if inserted == 0 {
		return 0, ErrNoValidRows
	}

	publishAudit(ctx, svc.kafka, "webhosting_user", "imported", 0)
	return inserted, nil
}
