package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/models"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"
)

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plan := "Platinum"

	tests := []struct {
		name         string
		url          string
		body         string
		mockSetup    func(m *MockUserUpdater)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			url:  "/api/user/7",
			body: `{"plan":"Platinum"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(7), models.UserUpdate{Plan: &plan}).
					Return(nil)
			},
			expectedCode: 200,
			expectedMsg:  "User updated successfully.",
		},
		{
			name: "unknown keys are dropped",
			url:  "/api/user/7",
			body: `{"plan":"Platinum","username":"smuggled","id":99}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(7), models.UserUpdate{Plan: &plan}).
					Return(nil)
			},
			expectedCode: 200,
			expectedMsg:  "User updated successfully.",
		},
		{
			name: "user not found",
			url:  "/api/user/8",
			body: `{"plan":"Platinum"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(8), gomock.Any()).
					Return(services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedMsg:  "User not found.",
		},
		{
			name:         "bad id",
			url:          "/api/user/abc",
			body:         `{"plan":"Platinum"}`,
			expectedCode: 404,
			expectedMsg:  "User not found.",
		},
		{
			name:         "invalid json",
			url:          "/api/user/7",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedMsg:  "Invalid request body.",
		},
		{
			name: "store failure",
			url:  "/api/user/9",
			body: `{"plan":"Platinum"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					Update(gomock.Any(), int64(9), gomock.Any()).
					Return(errors.New("db error"))
			},
			expectedCode: 500,
			expectedMsg:  "Failed to update user.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Put("/api/user/{id}", NewUpdateUserHandler(mockSvc))

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewBufferString(tt.body))
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockUserDeleter)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			url:  "/api/user/7",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(7)).
					Return(nil)
			},
			expectedCode: 200,
			expectedMsg:  "User deleted successfully.",
		},
		{
			name: "user not found",
			url:  "/api/user/8",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					Delete(gomock.Any(), int64(8)).
					Return(services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedMsg:  "User not found.",
		},
		{
			name:         "bad id",
			url:          "/api/user/0",
			expectedCode: 404,
			expectedMsg:  "User not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Delete("/api/user/{id}", NewDeleteUserHandler(mockSvc))

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, tt.url, nil)
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp["message"])
		})
	}
}
