package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"study-forum-app/config/common"
	"study-forum-app/middleware"
)

func NewFiber(cfg *common.Config) *fiber.App {
	engine := html.New("./templates", ".html")

	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		AppName:       cfg.GetAppConfig(),
		Views:         engine,
		ErrorHandler:  middleware.ErrorHandler,
	})
}
