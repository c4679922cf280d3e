package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"study-forum-app/config/common"
	"study-forum-app/config/logger"
	"study-forum-app/handler"
	"study-forum-app/middleware"
	"study-forum-app/repository"
	"study-forum-app/routes"
	"study-forum-app/security"
	"study-forum-app/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
}

func NewLogrus() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

func NewValidator() *validator.Validate {
	return validator.New()
}

func RunServer() {
	newConfig := common.NewViper()
	log := NewLogrus()
	appLog := logger.NewLogger()

	app := NewFiber(newConfig)
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newTopicRepository := repository.NewTopicRepository()
	newRoomRepository := repository.NewRoomRepository()
	newMessageRepository := repository.NewMessageRepository()

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, newRoomRepository, newMessageRepository, newTopicRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newRoomUsecase := usecase.NewRoomUsecase(newRoomRepository, newTopicRepository, newMessageRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newRoomRepository, aC.Validate, aC.GetDB(), aC.Logger)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newRoomHandler := handler.NewRoomHandler(newRoomUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, aC.Logger)
	newApiHandler := handler.NewApiHandler(newRoomUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:            aC.App,
		Middleware:     aC.Middleware,
		AuthHandler:    newAuthHandler,
		UserHandler:    newUserHandler,
		RoomHandler:    newRoomHandler,
		MessageHandler: newMessageHandler,
		ApiHandler:     newApiHandler,
	}
	route.GetRoute()
}
