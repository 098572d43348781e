package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.AdminUser
	}{
		{
			name:  "User found",
			login: "ops.admin",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "role"}).
					AddRow(1, "ops.admin", "hashed_password", domain.RoleAdmin)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash, role FROM admin_users WHERE login = $1")).
					WithArgs("ops.admin").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.AdminUser{
				ID:           1,
				Login:        "ops.admin",
				PasswordHash: "hashed_password",
				Role:         domain.RoleAdmin,
			},
		},
		{
			name:  "User not found",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash, role FROM admin_users WHERE login = $1")).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "ops.admin",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash, role FROM admin_users WHERE login = $1")).
					WithArgs("ops.admin").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.AdminUser
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.AdminUser{Login: "ops.admin", PasswordHash: "hashed_password", Role: domain.RoleAdmin},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO admin_users (login, password_hash, role)
			VALUES ($1, $2, $3)
			RETURNING id`)).
					WithArgs("ops.admin", "hashed_password", domain.RoleAdmin).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.AdminUser{Login: "ops.admin", PasswordHash: "hashed_password", Role: domain.RoleAdmin},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO admin_users (login, password_hash, role)
			VALUES ($1, $2, $3)
			RETURNING id`)).
					WithArgs("ops.admin", "hashed_password", domain.RoleAdmin).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
