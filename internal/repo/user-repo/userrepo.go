package userrepo

import (
	"context"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, role FROM admin_users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find admin user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.AdminUser) (*domain.AdminUser, error) {
	query := `
		INSERT INTO admin_users (login, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save admin user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
