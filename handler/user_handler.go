package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"study-forum-app/dto/req"
	"study-forum-app/middleware"
	"study-forum-app/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) Profile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	profile, err := handler.UserUsecase.GetProfile(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Render("profile", fiber.Map{
		"User":         profile.User,
		"Rooms":        profile.Rooms,
		"RoomMessages": profile.RoomMessages,
		"Topics":       profile.Topics,
		"RoomCount":    profile.RoomCount,
		"TopicCount":   profile.TopicCount,
		"UserID":       middleware.CurrentUserID(c),
	})
}

func (handler *UserHandler) UpdateUserPage(c *fiber.Ctx) error {
	user, err := handler.UserUsecase.GetUser(c.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Render("update_user", fiber.Map{
		"User":   user,
		"UserID": user.ID,
	})
}

func (handler *UserHandler) UpdateUser(c *fiber.Ctx) error {
	payload := new(req.EditProfileRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	userID := middleware.CurrentUserID(c)
	user, err := handler.UserUsecase.UpdateProfile(c.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("failed to update profile")
		return c.Render("update_user", fiber.Map{
			"Error":  "An error occurred while updating your profile",
			"UserID": userID,
		})
	}

	return c.Redirect(fmt.Sprintf("/profile/%d", user.ID))
}
