package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

func validHostingUser() models.WebHostingUserDB {
	return models.WebHostingUserDB{
		UserName:       "nic-portal",
		HostingType:    "Shared",
		TariffPlan:     "Basic",
		YearlyAmount:   5000,
		ActivationDate: "2025-04-01",
		Email:          "admin@nic.in",
		ContactPerson:  "Ravi",
	}
}

// writeWorkbook writes rows to the first sheet of a temporary .xlsx
// file and returns its path.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetList()[0]
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestWebHostingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWebHostingReader(ctrl)
	mockWriter := services.NewMockWebHostingWriter(ctrl)

	svc := services.NewWebHostingService(mockReader, mockWriter, nil)

	tests := []struct {
		name      string
		user      models.WebHostingUserDB
		writerErr error
		wantID    int64
		wantErr   error
	}{
		{
			name:   "successful creation",
			user:   validHostingUser(),
			wantID: 1,
		},
		{
			name:    "missing required fields",
			user:    models.WebHostingUserDB{UserName: "incomplete"},
			wantErr: services.ErrHostingFieldsMissing,
		},
		{
			name:      "writer error",
			user:      validHostingUser(),
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.wantErr, services.ErrHostingFieldsMissing) {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.user).
					Return(tt.wantID, tt.writerErr)
			}

			id, err := svc.Create(context.Background(), tt.user)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestWebHostingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWebHostingReader(ctrl)
	mockWriter := services.NewMockWebHostingWriter(ctrl)

	svc := services.NewWebHostingService(mockReader, mockWriter, nil)

	want := []models.WebHostingUserDB{validHostingUser()}
	mockReader.EXPECT().List(gomock.Any()).Return(want, nil)

	users, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, users)
}

func TestWebHostingService_ImportXLSX(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockWebHostingReader(ctrl)
	mockWriter := services.NewMockWebHostingWriter(ctrl)

	svc := services.NewWebHostingService(mockReader, mockWriter, nil)

	t.Run("imports valid rows and skips unnamed ones", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"User Name", "Hosting Type", "Tariff Plan", "Yearly Amount", "Activation Date", "Email", "Contact Person"},
			{"nic-portal", "Shared", "Basic", "5000", "2025-04-01", "admin@nic.in", "Ravi"},
			{"", "Shared", "Basic", "3000", "2025-04-02", "", ""},
			{"ignou-web", "Dedicated", "Gold", "12000", "2025-04-03", "web@ignou.ac.in", "Meena"},
		})

		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.WebHostingUserDB) (int64, error) {
				assert.NotEmpty(t, user.UserName)
				return 1, nil
			}).
			Times(2)

		count, err := svc.ImportXLSX(context.Background(), path)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("tolerates header aliases", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"Name", "Type", "Plan", "Amount", "Date"},
			{"du-site", "Shared", "Basic", "4500", "2025-05-01"},
		})

		mockWriter.EXPECT().
			Save(gomock.Any(), models.WebHostingUserDB{
				UserName:       "du-site",
				HostingType:    "Shared",
				TariffPlan:     "Basic",
				YearlyAmount:   4500,
				ActivationDate: "2025-05-01",
			}).
			Return(int64(1), nil)

		count, err := svc.ImportXLSX(context.Background(), path)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"User Name", "Hosting Type"},
		})

		_, err := svc.ImportXLSX(context.Background(), path)
		assert.ErrorIs(t, err, services.ErrWorkbookEmpty)
	})

	t.Run("no valid rows", func(t *testing.T) {
		path := writeWorkbook(t, [][]interface{}{
			{"User Name", "Hosting Type"},
			{"", "Shared"},
		})

		_, err := svc.ImportXLSX(context.Background(), path)
		assert.ErrorIs(t, err, services.ErrNoValidRows)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := svc.ImportXLSX(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))
		assert.Error(t, err)
	})
}
