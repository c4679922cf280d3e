package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"study-forum-app/dto/req"
	"study-forum-app/entity"
	"study-forum-app/repository"
)

type MessageUsecaseImpl struct {
	*repository.MessageRepository
	*repository.RoomRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewMessageUsecase(messageRepository *repository.MessageRepository, roomRepository *repository.RoomRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) MessageUsecase {
	return &MessageUsecaseImpl{
		MessageRepository: messageRepository,
		RoomRepository:    roomRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
	}
}

// PostMessage creates a message in the room and joins the author to the
// participant set in the same transaction. No authentication is enforced at
// this level: an anonymous caller carries user id 0, which fails the foreign
// key on insert.
func (uc *MessageUsecaseImpl) PostMessage(ctx context.Context, userID, roomID uint, request *req.MessageRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("failed to validate message request")
		return err
	}

	var room entity.Room
	if err := uc.RoomRepository.FindById(ctx, uc.DB, &room, roomID); err != nil {
		return err
	}

	return uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		message := &entity.Message{
			RoomID: room.ID,
			UserID: userID,
			Body:   request.Body,
		}
		if err := uc.MessageRepository.Save(ctx, tx, message); err != nil {
			uc.Logger.WithError(err).Error("failed to save message")
			return err
		}

		author := entity.User{BaseEntity: entity.BaseEntity{ID: userID}}
		if err := uc.RoomRepository.AddParticipant(ctx, tx, &room, &author); err != nil {
			uc.Logger.WithError(err).Error("failed to join participant")
			return err
		}
		return nil
	})
}

func (uc *MessageUsecaseImpl) GetMessage(ctx context.Context, id uint) (entity.Message, error) {
	var message entity.Message
	err := uc.MessageRepository.FindById(ctx, uc.DB, &message, id)
	return message, err
}

// DeleteMessage removes a message after checking the actor is its author.
func (uc *MessageUsecaseImpl) DeleteMessage(ctx context.Context, actorID, id uint) error {
	var message entity.Message
	if err := uc.MessageRepository.FindById(ctx, uc.DB, &message, id); err != nil {
		return err
	}

	if message.UserID != actorID {
		return ErrNotAllowed
	}

	return uc.MessageRepository.Delete(ctx, uc.DB, &message)
}

func (uc *MessageUsecaseImpl) Activity(ctx context.Context) ([]entity.Message, error) {
	return uc.MessageRepository.FindAllNewest(ctx, uc.DB)
}
