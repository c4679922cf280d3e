package routes

import (
	"github.com/gofiber/fiber/v2"

	"study-forum-app/handler"
	"study-forum-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.RoomHandler
	*handler.MessageHandler
	*handler.ApiHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.App.Use(rc.Middleware.RequestLogger)
	rc.App.Use(rc.Middleware.LoadSessionUser)

	rc.GetPublicRoute()
	rc.GetProtectedRoute()
	rc.GetApiRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	rc.App.Get("/", rc.RoomHandler.Home)

	// the POST side intentionally has no session guard: anonymous posts fail
	// at the persistence layer, matching the room view's contract
	rc.App.Get("/room/:id", rc.RoomHandler.RoomPage)
	rc.App.Post("/room/:id", rc.MessageHandler.PostMessage)

	rc.App.Get("/profile/:id", rc.UserHandler.Profile)
	rc.App.Get("/topics", rc.RoomHandler.TopicsPage)
	rc.App.Get("/activity", rc.MessageHandler.Activity)

	rc.App.Get("/login", rc.AuthHandler.LoginPage)
	rc.App.Post("/login", rc.AuthHandler.Login)
	rc.App.Get("/register", rc.AuthHandler.RegisterPage)
	rc.App.Post("/register", rc.AuthHandler.Register)
	rc.App.Get("/logout", rc.AuthHandler.Logout)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	guard := []fiber.Handler{rc.Middleware.SessionProtected, rc.Middleware.ExtractUserID}

	rc.App.Get("/create-room", append(guard, rc.RoomHandler.CreateRoomPage)...)
	rc.App.Post("/create-room", append(guard, rc.RoomHandler.CreateRoom)...)

	rc.App.Get("/update-room/:id", append(guard, rc.RoomHandler.UpdateRoomPage)...)
	rc.App.Post("/update-room/:id", append(guard, rc.RoomHandler.UpdateRoom)...)

	rc.App.Get("/delete-room/:id", append(guard, rc.RoomHandler.DeleteRoomPage)...)
	rc.App.Post("/delete-room/:id", append(guard, rc.RoomHandler.DeleteRoom)...)

	rc.App.Get("/delete-message/:id", append(guard, rc.MessageHandler.DeleteMessagePage)...)
	rc.App.Post("/delete-message/:id", append(guard, rc.MessageHandler.DeleteMessage)...)

	rc.App.Get("/update-user", append(guard, rc.UserHandler.UpdateUserPage)...)
	rc.App.Post("/update-user", append(guard, rc.UserHandler.UpdateUser)...)
}

func (rc *ConfigRoute) GetApiRoute() {
	api := rc.App.Group("/api")

	api.Get("/", rc.ApiHandler.Routes)
	api.Get("/rooms", rc.ApiHandler.GetRooms)
	api.Get("/rooms/:id", rc.ApiHandler.GetRoom)
}
