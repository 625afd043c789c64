package services

import (
	"errors"

	"carelink_backend/internal/auth"
	"carelink_backend/internal/config"
	"carelink_backend/internal/logger"
	"carelink_backend/internal/models"
	"carelink_backend/internal/repositories"
	"carelink_backend/internal/services/dto"
	"carelink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthService issues tokens for the administrative endpoints.
type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	SeedFirstAdmin(db *gorm.DB) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid email or password")
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("Invalid email or password")
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		Role:        string(user.Role),
	}, nil
}

// SeedFirstAdmin creates the bootstrap admin account on startup when the
// credentials are configured and no account with that email exists yet.
func (s *authService) SeedFirstAdmin(db *gorm.DB) error {
	cfg := config.GetConfig()
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	if _, err := s.userRepo.FindByEmail(db, cfg.Admin.Email); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         "Administrator",
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return err
	}

	logger.Info("seeded first admin account", "email", cfg.Admin.Email)
	return nil
}
