package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"study-forum-app/dto/res"
)

// ErrorHandler is the app-wide fiber error handler. Lookups on missing rows
// become 404s instead of crashes, validation failures become 400s, and API
// routes get a JSON body while HTML routes get plain text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = fiber.StatusNotFound
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.As(err, &validationErrs):
		code = fiber.StatusBadRequest
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(res.ErrorResponse{
			Status:     http.StatusText(code),
			StatusCode: code,
			Error:      err.Error(),
		})
	}

	return c.Status(code).SendString(http.StatusText(code))
}
