package usecase

import (
	"context"
	"errors"
	"fmt"

	"post-app/pkg/jwt"
	"post-app/pkg/logger"
	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, input LoginInput) (*entity.User, string, error)
}

type authUseCase struct {
	users      repo.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(users repo.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	_, err := uc.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, "", entity.ErrEmailTaken
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		uc.logger.Error("Failed to check email: %v", err)
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		UserName: input.UserName,
		Email:    input.Email,
		Password: string(hashedPassword),
		Posts:    []string{},
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if !errors.Is(err, entity.ErrEmailTaken) {
			uc.logger.Error("Failed to create user: %v", err)
		}
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	uc.logger.Info("Registered user %s", user.ID)
	return user.Sanitized(), token, nil
}

func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*entity.User, string, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	return user.Sanitized(), token, nil
}
