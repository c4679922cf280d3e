package usecase

import (
	"context"

	"study-forum-app/dto/req"
	"study-forum-app/dto/res"
	"study-forum-app/entity"
)

type UserUsecase interface {
	GetUser(ctx context.Context, id uint) (entity.User, error)
	GetProfile(ctx context.Context, id uint) (res.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint, request *req.EditProfileRequest) (entity.User, error)
}
