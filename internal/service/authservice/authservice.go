package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/farafina/backoffice/internal/domain"
	"github.com/farafina/backoffice/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.AdminUser, error)
	Create(ctx context.Context, user *domain.AdminUser) (*domain.AdminUser, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginAlreadyExists = errors.New("login already taken")
	ErrUnknownRole        = errors.New("unknown role")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

func validRole(role string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleFinance, domain.RoleSuperAdmin:
		return true
	}
	return false
}

func (s *Service) Register(ctx context.Context, login, password, role string) (*domain.AdminUser, error) {
	if !validRole(role) {
		return nil, ErrUnknownRole
	}
	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find admin user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("admin user already exists", zap.String("login", login))
		return nil, ErrLoginAlreadyExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.AdminUser{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create admin user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("admin user registered", zap.String("login", login), zap.String("role", role))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.AdminUser, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Info("login failed", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("login failed", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GenerateToken(user *domain.AdminUser) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, user.Role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
