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

func TestAddUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"username":"acme_corp","state":"Delhi","serviceType":"VM Hosting","plan":"Gold","totalAmount":1000,"discount":10,"piDate":"2025-04-01","invoiceDate":"2025-04-15","numVMs":2}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.UserDB{
						Username:    "acme_corp",
						State:       "Delhi",
						ServiceType: "VM Hosting",
						Plan:        "Gold",
						TotalAmount: 1000,
						Discount:    10,
						PIDate:      "2025-04-01",
						InvoiceDate: "2025-04-15",
						NumVMs:      2,
					}).
					Return(int64(42), nil)
			},
			expectedCode: 201,
			expectedMsg:  "User added successfully.",
		},
		{
			name: "numeric fields arrive as strings",
			body: `{"username":"acme_corp","state":"Delhi","serviceType":"VM Hosting","plan":"Gold","totalAmount":"1000","discount":"10","piDate":"2025-04-01","invoiceDate":"2025-04-15","numVMs":"2"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.UserDB{
						Username:    "acme_corp",
						State:       "Delhi",
						ServiceType: "VM Hosting",
						Plan:        "Gold",
						TotalAmount: 1000,
						Discount:    10,
						PIDate:      "2025-04-01",
						InvoiceDate: "2025-04-15",
						NumVMs:      2,
					}).
					Return(int64(43), nil)
			},
			expectedCode: 201,
			expectedMsg:  "User added successfully.",
		},
		{
			name: "required fields missing",
			body: `{"username":"acme_corp"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), services.ErrUserFieldsMissing)
			},
			expectedCode: 400,
			expectedMsg:  "Please fill all required fields.",
		},
		{
			name: "username already exists",
			body: `{"username":"acme_corp","state":"Delhi","serviceType":"VM Hosting","plan":"Gold","totalAmount":1000,"piDate":"2025-04-01","invoiceDate":"2025-04-15"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), services.ErrUsernameExists)
			},
			expectedCode: 409,
			expectedMsg:  "Username already exists.",
		},
		{
			name: "internal server error",
			body: `{"username":"acme_corp","state":"Delhi","serviceType":"VM Hosting","plan":"Gold","totalAmount":1000,"piDate":"2025-04-01","invoiceDate":"2025-04-15"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database failure"))
			},
			expectedCode: 500,
			expectedMsg:  "Failed to insert user.",
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedMsg:  "Please fill all required fields.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAddUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/add-user", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, resp["message"])
			if tt.expectedCode == 201 {
				assert.NotZero(t, resp["id"])
			}
		})
	}
}
