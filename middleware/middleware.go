package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"study-forum-app/config/common"
	"study-forum-app/security"
)

const userIDKey = "user_id"

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger}
}

// CurrentUserID returns the authenticated user's id for this request, or 0
// when the request is anonymous.
func CurrentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(userIDKey).(uint); ok {
		return id
	}
	return 0
}

// SessionProtected guards mutation routes. An HTML client without a valid
// session cookie is sent to the login page rather than handed a JSON error.
func (middleware *Middleware) SessionProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: secretKey},
		TokenLookup: "cookie:" + security.SessionCookie,
		ContextKey:  "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Warn("rejected request without valid session")
			return ctx.Redirect("/login")
		},
	})(c)
}

// ExtractUserID resolves the session cookie into a user id and stores it in
// request locals. Runs after SessionProtected on guarded routes.
func (middleware *Middleware) ExtractUserID(c *fiber.Ctx) error {
	token := c.Cookies(security.SessionCookie)
	userID, err := middleware.JWT.GetUserIdFromToken(token)
	if err != nil {
		middleware.Log.WithError(err).Error("failed to extract user id from session cookie")
		return c.Redirect("/login")
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

// LoadSessionUser is the optional variant used on public pages: a valid
// cookie populates the current user, an absent or broken one is ignored.
func (middleware *Middleware) LoadSessionUser(c *fiber.Ctx) error {
	if token := c.Cookies(security.SessionCookie); token != "" {
		if userID, err := middleware.JWT.GetUserIdFromToken(token); err == nil {
			c.Locals(userIDKey, userID)
		}
	}
	return c.Next()
}
