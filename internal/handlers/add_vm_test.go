package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

func TestAddVMHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockVMCreator)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"hostname":"web-01","core":"4","ram":"8GB","storage":"100GB","os":"Ubuntu 22.04","password":"s3cret"}`,
			mockSetup: func(m *MockVMCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.VMDB{
						Hostname: "web-01",
						Core:     "4",
						RAM:      "8GB",
						Storage:  "100GB",
						OS:       "Ubuntu 22.04",
						Password: "s3cret",
					}).
					Return(int64(7), nil)
			},
			expectedCode: 201,
			expectedMsg:  "VM details added successfully",
		},
		{
			name: "required fields missing",
			body: `{"hostname":"web-01"}`,
			mockSetup: func(m *MockVMCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), services.ErrVMFieldsMissing)
			},
			expectedCode: 400,
			expectedMsg:  "Missing required fields",
		},
		{
			name: "internal server error",
			body: `{"hostname":"web-01","core":"4","ram":"8GB","storage":"100GB","os":"Ubuntu 22.04"}`,
			mockSetup: func(m *MockVMCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database failure"))
			},
			expectedCode: 500,
			expectedMsg:  "Failed to insert VM details",
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedMsg:  "Missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockVMCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAddVMHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/add-vm", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}

func TestBulkAddVMsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("reports per-entry outcome", func(t *testing.T) {
		mockSvc := NewMockVMBulkCreator(ctrl)
		mockSvc.EXPECT().
			BulkCreate(gomock.Any(), gomock.Len(2)).
			Return(models.BulkResult{SuccessCount: 2})

		body := `{"vms":[{"hostname":"web-01","core":"4","ram":"8GB","storage":"100GB","os":"Ubuntu 22.04"},{"hostname":"db-01","core":"8","ram":"16GB","storage":"500GB","os":"Debian 12"}]}`
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bulk-add-vms", bytes.NewBufferString(body))
		NewBulkAddVMsHandler(mockSvc)(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp BulkAddVMsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.SuccessCount)
		assert.Equal(t, 0, resp.ErrorCount)
	})

	t.Run("empty batch", func(t *testing.T) {
		mockSvc := NewMockVMBulkCreator(ctrl)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bulk-add-vms", bytes.NewBufferString(`{}`))
		NewBulkAddVMsHandler(mockSvc)(rr, req)

		assert.Equal(t, 400, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "No VM data provided", resp["message"])
	})
}

func TestVMsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns inventory", func(t *testing.T) {
		mockSvc := NewMockVMLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.VMDB{{ID: 1, Hostname: "web-01"}}, nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vms", nil)
		NewVMsHandler(mockSvc)(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp VMsResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.VMs, 1)
		assert.Equal(t, "web-01", resp.VMs[0].Hostname)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := NewMockVMLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/vms", nil)
		NewVMsHandler(mockSvc)(rr, req)

		assert.Equal(t, 500, rr.Code)
	})
}

func TestVMCountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockVMCounter(ctrl)
	mockSvc.EXPECT().
		Count(gomock.Any()).
		Return(int64(12), nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vm-count", nil)
	NewVMCountHandler(mockSvc)(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp VMCountResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Total)
}
