package middleware

import (
	"net/url"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/dto"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/services"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/session"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

const userLocal = "session_user"

// RequireAuth guards JSON routes: no session identity means a 401
// payload, never a redirect.
func RequireAuth(store *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		user := session.User(sess)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Session expired. Please login again.",
			})
		}
		c.Locals(userLocal, user)
		return c.Next()
	}
}

// RequireLogin guards page routes: no session identity means a redirect
// to the login entry point with a human-readable reason.
func RequireLogin(store *fibersession.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		user := session.User(sess)
		if user == nil {
			return c.Redirect("/?msg=" + url.QueryEscape("Please login first"))
		}
		c.Locals(userLocal, user)
		return c.Next()
	}
}

// CurrentUser returns the session identity resolved by RequireAuth or
// RequireLogin for this request.
func CurrentUser(c *fiber.Ctx) *services.SessionUser {
	if user, ok := c.Locals(userLocal).(*services.SessionUser); ok {
		return user
	}
	return nil
}
