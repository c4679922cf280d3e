package usecase

import (
	"context"

	"study-forum-app/dto/req"
	"study-forum-app/dto/res"
	"study-forum-app/entity"
)

type RoomUsecase interface {
	Home(ctx context.Context, q string) (res.HomeResponse, error)
	GetRoom(ctx context.Context, id uint) (res.RoomDetailResponse, error)
	GetRoomForEdit(ctx context.Context, actorID, id uint) (entity.Room, error)
	CreateRoom(ctx context.Context, hostID uint, request *req.RoomRequest) error
	UpdateRoom(ctx context.Context, actorID, id uint, request *req.RoomRequest) error
	DeleteRoom(ctx context.Context, id uint) error
	ListTopics(ctx context.Context, q string) ([]entity.Topic, error)
	AllTopics(ctx context.Context) ([]entity.Topic, error)
	GetAllRooms(ctx context.Context) ([]res.RoomResponse, error)
	GetRoomResponse(ctx context.Context, id uint) (res.RoomResponse, error)
}
