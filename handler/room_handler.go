package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"study-forum-app/dto/req"
	"study-forum-app/middleware"
	"study-forum-app/usecase"
)

type RoomHandler struct {
	usecase.RoomUsecase
	*logrus.Logger
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, logger *logrus.Logger) *RoomHandler {
	return &RoomHandler{RoomUsecase: roomUsecase, Logger: logger}
}

func (handler *RoomHandler) Home(c *fiber.Ctx) error {
	q := c.Query("q")

	page, err := handler.RoomUsecase.Home(c.Context(), q)
	if err != nil {
		return err
	}

	return c.Render("home", fiber.Map{
		"Rooms":        page.Rooms,
		"Topics":       page.Topics,
		"RoomCount":    page.RoomCount,
		"TopicCount":   page.TopicCount,
		"RoomMessages": page.RoomMessages,
		"Query":        q,
		"UserID":       middleware.CurrentUserID(c),
	})
}

func (handler *RoomHandler) RoomPage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := handler.RoomUsecase.GetRoom(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Render("room", fiber.Map{
		"Room":         detail.Room,
		"RoomMessages": detail.RoomMessages,
		"Participants": detail.Participants,
		"UserID":       middleware.CurrentUserID(c),
	})
}

func (handler *RoomHandler) CreateRoomPage(c *fiber.Ctx) error {
	topics, err := handler.RoomUsecase.AllTopics(c.Context())
	if err != nil {
		return err
	}

	return c.Render("room_form", fiber.Map{
		"Topics": topics,
		"UserID": middleware.CurrentUserID(c),
	})
}

func (handler *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	payload := new(req.RoomRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	hostID := middleware.CurrentUserID(c)
	if err := handler.RoomUsecase.CreateRoom(c.Context(), hostID, payload); err != nil {
		handler.Logger.WithError(err).Error("failed to create room")
		return err
	}

	return c.Redirect("/")
}

func (handler *RoomHandler) UpdateRoomPage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	room, err := handler.RoomUsecase.GetRoomForEdit(c.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotAllowed) {
			return notAllowed(c)
		}
		return err
	}

	topics, err := handler.RoomUsecase.AllTopics(c.Context())
	if err != nil {
		return err
	}

	return c.Render("room_form", fiber.Map{
		"Room":   room,
		"Topics": topics,
		"UserID": middleware.CurrentUserID(c),
	})
}

func (handler *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(req.RoomRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.RoomUsecase.UpdateRoom(c.Context(), middleware.CurrentUserID(c), id, payload); err != nil {
		if errors.Is(err, usecase.ErrNotAllowed) {
			return notAllowed(c)
		}
		return err
	}

	return c.Redirect("/")
}

// DeleteRoomPage renders the confirmation view; only the POST below performs
// the delete.
func (handler *RoomHandler) DeleteRoomPage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := handler.RoomUsecase.GetRoom(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Render("delete", fiber.Map{
		"Obj":    detail.Room.Name,
		"UserID": middleware.CurrentUserID(c),
	})
}

func (handler *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := handler.RoomUsecase.DeleteRoom(c.Context(), id); err != nil {
		return err
	}

	return c.Redirect("/")
}

func (handler *RoomHandler) TopicsPage(c *fiber.Ctx) error {
	q := c.Query("q")

	topics, err := handler.RoomUsecase.ListTopics(c.Context(), q)
	if err != nil {
		return err
	}

	return c.Render("topics", fiber.Map{
		"Topics": topics,
		"Query":  q,
		"UserID": middleware.CurrentUserID(c),
	})
}
