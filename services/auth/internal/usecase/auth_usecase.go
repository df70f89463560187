package usecase

import (
	"fmt"

	"boost-market/pkg/jwt"
	"boost-market/pkg/logger"
	"boost-market/services/auth/internal/entity"
	"boost-market/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(name, number, password string) (*entity.User, string, error)
	Login(number, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	UpdateProfile(userID, name string) (*entity.User, error)
	LinkSocialAccount(userID, name, link string) (*entity.User, error)
	ListUsers() ([]*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(name, number, password string) (*entity.User, string, error) {
	_, err := uc.userRepo.GetByNumber(number)
	if err == nil {
		return nil, "", fmt.Errorf("user with this number already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Name:     name,
		Number:   number,
		Password: string(hashedPassword),
		Role:     entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(number, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByNumber(number)
	if err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) UpdateProfile(userID, name string) (*entity.User, error) {
	if err := uc.userRepo.UpdateName(userID, name); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}
	return uc.GetUser(userID)
}

func (uc *authUseCase) LinkSocialAccount(userID, name, link string) (*entity.User, error) {
	account := &entity.SocialAccount{
		UserID: userID,
		Name:   name,
		Link:   link,
	}
	if err := uc.userRepo.AddSocialAccount(account); err != nil {
		uc.logger.Error("Failed to link social account: %v", err)
		return nil, fmt.Errorf("failed to link social account")
	}
	return uc.GetUser(userID)
}

func (uc *authUseCase) ListUsers() ([]*entity.User, error) {
	return uc.userRepo.List()
}
