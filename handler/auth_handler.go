package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"study-forum-app/dto/req"
	"study-forum-app/middleware"
	"study-forum-app/security"
	"study-forum-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if middleware.CurrentUserID(c) != 0 {
		return c.Redirect("/")
	}
	return c.Render("login_register", fiber.Map{"Page": "login"})
}

func (handler *AuthHandler) Login(c *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	session, err := handler.AuthUsecase.LoginUser(c.Context(), payload)
	if err != nil {
		// one message for unknown user and wrong password alike
		return c.Render("login_register", fiber.Map{
			"Page":  "login",
			"Error": "Username or password does not exist",
		})
	}

	handler.setSessionCookie(c, session.Token)
	return c.Redirect("/")
}

func (handler *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	if middleware.CurrentUserID(c) != 0 {
		return c.Redirect("/")
	}
	return c.Render("login_register", fiber.Map{"Page": "register"})
}

func (handler *AuthHandler) Register(c *fiber.Ctx) error {
	payload := new(req.RegisterRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	session, err := handler.AuthUsecase.RegisterUser(c.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("failed to register user")
		return c.Render("login_register", fiber.Map{
			"Page":  "register",
			"Error": "An error occurred during registration",
		})
	}

	handler.setSessionCookie(c, session.Token)
	return c.Redirect("/")
}

func (handler *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     security.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/login")
}

func (handler *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     security.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
