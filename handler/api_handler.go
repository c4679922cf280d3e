package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"study-forum-app/dto/res"
	"study-forum-app/usecase"
)

// ApiHandler serves the read-only JSON projection of room data, independent
// of the template-rendering path and requiring no session.
type ApiHandler struct {
	usecase.RoomUsecase
	*logrus.Logger
}

func NewApiHandler(roomUsecase usecase.RoomUsecase, logger *logrus.Logger) *ApiHandler {
	return &ApiHandler{RoomUsecase: roomUsecase, Logger: logger}
}

func (handler *ApiHandler) Routes(c *fiber.Ctx) error {
	routes := []string{
		"GET /api",
		"GET /api/rooms/",
		"GET /api/rooms/:id",
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]string]{
		Message:    "Available routes",
		StatusCode: fiber.StatusOK,
		Data:       routes,
	})
}

func (handler *ApiHandler) GetRooms(c *fiber.Ctx) error {
	rooms, err := handler.RoomUsecase.GetAllRooms(c.Context())
	if err != nil {
		handler.Logger.WithError(err).Error("failed to list rooms")
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.RoomResponse]{
		Message:    "Successfully listed rooms",
		StatusCode: fiber.StatusOK,
		Data:       rooms,
	})
}

func (handler *ApiHandler) GetRoom(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	room, err := handler.RoomUsecase.GetRoomResponse(c.Context(), id)
	if err != nil {
		// a missing id surfaces as 404 through the app error handler
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.RoomResponse]{
		Message:    "Successfully retrieved room",
		StatusCode: fiber.StatusOK,
		Data:       room,
	})
}
