package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"study-forum-app/dto/req"
	"study-forum-app/dto/res"
	"study-forum-app/entity"
	"study-forum-app/repository"
	"study-forum-app/security"
	"study-forum-app/util"
)

type AuthUsecaseImpl struct {
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.SessionResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate registration request")
		return res.SessionResponse{}, err
	}

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.SessionResponse{}, err
	}

	// usernames are stored lowercase so login can be case-insensitive
	newUser := &entity.User{
		Username: strings.ToLower(request.Username),
		Password: hashPassword,
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	if err := uc.UserRepository.Save(ctx, trx, newUser); err != nil {
		uc.Logger.WithError(err).Error("failed to save user")
		return res.SessionResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Error("failed to commit user")
		return res.SessionResponse{}, err
	}

	token, err := uc.JWT.GenerateToken(newUser)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate session token")
		return res.SessionResponse{}, err
	}

	return res.SessionResponse{
		Token:    token,
		UserID:   newUser.ID,
		Username: newUser.Username,
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.SessionResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate login request")
		return res.SessionResponse{}, err
	}

	username := strings.ToLower(request.Username)

	currentUser, err := uc.UserRepository.FindByUsername(ctx, uc.DB, username)
	if err != nil {
		uc.Logger.WithField("username", username).Warn("login attempt for unknown user")
		return res.SessionResponse{}, ErrInvalidCredentials
	}

	if matchPassword := util.ComparePassword(currentUser.Password, request.Password); !matchPassword {
		uc.Logger.WithField("username", username).Warn("login attempt with wrong password")
		return res.SessionResponse{}, ErrInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(&currentUser)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate session token")
		return res.SessionResponse{}, err
	}

	return res.SessionResponse{
		Token:    token,
		UserID:   currentUser.ID,
		Username: currentUser.Username,
	}, nil
}
