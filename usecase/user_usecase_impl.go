package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"study-forum-app/dto/req"
	"study-forum-app/dto/res"
	"study-forum-app/entity"
	"study-forum-app/repository"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*repository.RoomRepository
	*repository.MessageRepository
	*repository.TopicRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewUserUsecase(userRepository *repository.UserRepository, roomRepository *repository.RoomRepository, messageRepository *repository.MessageRepository, topicRepository *repository.TopicRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) UserUsecase {
	return &UserUsecaseImpl{
		UserRepository:    userRepository,
		RoomRepository:    roomRepository,
		MessageRepository: messageRepository,
		TopicRepository:   topicRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
	}
}

func (uc *UserUsecaseImpl) GetUser(ctx context.Context, id uint) (entity.User, error) {
	var user entity.User
	err := uc.UserRepository.FindById(ctx, uc.DB, &user, id)
	return user, err
}

func (uc *UserUsecaseImpl) GetProfile(ctx context.Context, id uint) (res.ProfileResponse, error) {
	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, id); err != nil {
		return res.ProfileResponse{}, err
	}

	rooms, err := uc.RoomRepository.FindByHost(ctx, uc.DB, user.ID)
	if err != nil {
		return res.ProfileResponse{}, err
	}

	messages, err := uc.MessageRepository.FindByUser(ctx, uc.DB, user.ID)
	if err != nil {
		return res.ProfileResponse{}, err
	}

	var topics []entity.Topic
	if err := uc.TopicRepository.FindAll(ctx, uc.DB, &topics); err != nil {
		return res.ProfileResponse{}, err
	}

	return res.ProfileResponse{
		User:         user,
		Rooms:        rooms,
		RoomMessages: messages,
		Topics:       topics,
		RoomCount:    len(rooms),
		TopicCount:   len(topics),
	}, nil
}

// UpdateProfile lets a user change their own username and email, nothing
// else.
func (uc *UserUsecaseImpl) UpdateProfile(ctx context.Context, userID uint, request *req.EditProfileRequest) (entity.User, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate profile request")
		return entity.User{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, trx, &user, userID); err != nil {
		return entity.User{}, err
	}

	user.Username = request.Username
	user.Email = request.Email

	if err := uc.UserRepository.Update(ctx, trx, &user); err != nil {
		uc.Logger.WithError(err).Error("failed to update user")
		return entity.User{}, err
	}

	if err := trx.Commit().Error; err != nil {
		return entity.User{}, err
	}

	return user, nil
}
