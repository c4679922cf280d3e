package usecase

import (
	"context"

	"study-forum-app/dto/req"
	"study-forum-app/entity"
)

type MessageUsecase interface {
	PostMessage(ctx context.Context, userID, roomID uint, request *req.MessageRequest) error
	GetMessage(ctx context.Context, id uint) (entity.Message, error)
	DeleteMessage(ctx context.Context, actorID, id uint) error
	Activity(ctx context.Context) ([]entity.Message, error)
}
