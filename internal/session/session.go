// Package session wraps Fiber's cookie-session middleware with helpers
// for the minimal profile projection kept server-side per login.
package session

import (
	"github.com/RomiSinizkey/web-programming-chatroom/internal/config"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/services"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

const (
	keyEmail     = "email"
	keyFirstName = "first_name"
	keyLastName  = "last_name"
)

// NewStore builds the session store. The cookie carries only an opaque
// server-generated ID; the projection lives on the server side.
func NewStore(cfg *config.Config) *fibersession.Store {
	return fibersession.New(fibersession.Config{
		KeyLookup:      "cookie:chat_session",
		KeyGenerator:   uuid.NewString,
		Expiration:     cfg.SessionExpiry,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// SetUser stores the profile projection as scalar session values.
func SetUser(sess *fibersession.Session, u *services.SessionUser) {
	sess.Set(keyEmail, u.Email)
	sess.Set(keyFirstName, u.FirstName)
	sess.Set(keyLastName, u.LastName)
}

// User returns the logged-in profile, or nil when unauthenticated.
func User(sess *fibersession.Session) *services.SessionUser {
	email, ok := sess.Get(keyEmail).(string)
	if !ok || email == "" {
		return nil
	}
	firstName, _ := sess.Get(keyFirstName).(string)
	lastName, _ := sess.Get(keyLastName).(string)
	return &services.SessionUser{Email: email, FirstName: firstName, LastName: lastName}
}
