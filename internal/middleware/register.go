package middleware

import (
	"errors"
	"net/url"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/config"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RegisterCookie carries the signed pending-registration token between
// the two wizard steps.
const RegisterCookie = "register_data"

const registerLocal = "register_token"

// RegisterTokenRequired gates the step-2 wizard routes on a valid,
// unexpired pending-registration token. The exp claim check runs on
// both the GET and the POST, which closes the race where the token
// expires between page render and submission.
func RegisterTokenRequired(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:" + RegisterCookie,
		ContextKey:  registerLocal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.ClearCookie(RegisterCookie)
				return c.Redirect("/register?err=" + url.QueryEscape(services.ErrRegistrationExpired.Error()))
			}
			return c.Redirect("/register")
		},
	})
}

// PendingRegistration returns the step-1 data parsed by the token gate.
func PendingRegistration(c *fiber.Ctx) (*services.PendingRegistration, error) {
	token, ok := c.Locals(registerLocal).(*jwt.Token)
	if !ok {
		return nil, services.ErrInvalidToken
	}
	return services.PendingFromClaims(token.Claims)
}
