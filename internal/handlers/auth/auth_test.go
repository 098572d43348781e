package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	user := &domain.AdminUser{ID: 1, Login: "ops.admin", Role: domain.RoleAdmin}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"login":"ops.admin","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ops.admin", "s3cret").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("signed-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"ops.admin","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ops.admin", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Token generation failure",
			body: `{"login":"ops.admin","password":"s3cret"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "ops.admin", "s3cret").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer signed-token", w.Header().Get("Authorization"))

				var body struct {
					Success bool `json:"success"`
					Data    struct {
						Token string `json:"token"`
						Role  string `json:"role"`
					} `json:"data"`
				}
				err := json.Unmarshal(w.Body.Bytes(), &body)
				assert.NoError(t, err)
				assert.True(t, body.Success)
				assert.Equal(t, "signed-token", body.Data.Token)
				assert.Equal(t, domain.RoleAdmin, body.Data.Role)
			}
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"login":"finance.lead","password":"s3cret","role":"FINANCE"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "finance.lead", "s3cret", domain.RoleFinance).
					Return(&domain.AdminUser{ID: 2, Login: "finance.lead", Role: domain.RoleFinance}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"finance.lead","password":"s3cret","role":"FINANCE"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "finance.lead", "s3cret", domain.RoleFinance).
					Return(nil, authservice.ErrLoginAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown role",
			body: `{"login":"finance.lead","password":"s3cret","role":"INTERN"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "finance.lead", "s3cret", "INTERN").
					Return(nil, authservice.ErrUnknownRole)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service error",
			body: `{"login":"finance.lead","password":"s3cret","role":"FINANCE"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "finance.lead", "s3cret", domain.RoleFinance).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
