package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"study-forum-app/dto/req"
	"study-forum-app/middleware"
	"study-forum-app/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger}
}

// PostMessage handles the POST side of the room page: the body form field
// becomes a message by the current request user, who joins the participant
// set as a side effect.
func (handler *MessageHandler) PostMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(req.MessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	userID := middleware.CurrentUserID(c)
	if err := handler.MessageUsecase.PostMessage(c.Context(), userID, id, payload); err != nil {
		handler.Logger.WithError(err).Error("failed to post message")
		return err
	}

	return c.Redirect(fmt.Sprintf("/room/%d", id))
}

func (handler *MessageHandler) DeleteMessagePage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	message, err := handler.MessageUsecase.GetMessage(c.Context(), id)
	if err != nil {
		return err
	}

	if message.UserID != middleware.CurrentUserID(c) {
		return notAllowed(c)
	}

	return c.Render("delete", fiber.Map{
		"Obj":    message.Body,
		"UserID": middleware.CurrentUserID(c),
	})
}

func (handler *MessageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := handler.MessageUsecase.DeleteMessage(c.Context(), middleware.CurrentUserID(c), id); err != nil {
		if errors.Is(err, usecase.ErrNotAllowed) {
			return notAllowed(c)
		}
		return err
	}

	return c.Redirect("/")
}

func (handler *MessageHandler) Activity(c *fiber.Ctx) error {
	messages, err := handler.MessageUsecase.Activity(c.Context())
	if err != nil {
		return err
	}

	return c.Render("activity", fiber.Map{
		"RoomMessages": messages,
		"UserID":       middleware.CurrentUserID(c),
	})
}
