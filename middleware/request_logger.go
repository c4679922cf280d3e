package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with an id and logs method, path, status
// and latency once the handler chain returns.
func (middleware *Middleware) RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	requestID := uuid.New().String()
	c.Locals("request_id", requestID)

	err := c.Next()

	middleware.Log.WithFields(logrus.Fields{
		"request_id": requestID,
		"ip":         c.IP(),
		"method":     c.Method(),
		"path":       c.OriginalURL(),
		"status":     c.Response().StatusCode(),
		"latency":    time.Since(start).String(),
	}).Info("request completed")

	return err
}
