package usecase

import (
	"context"

	"study-forum-app/dto/req"
	"study-forum-app/dto/res"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.SessionResponse, error)
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.SessionResponse, error)
}
