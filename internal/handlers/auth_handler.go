package handlers

import (
	"errors"
	"net/url"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/dto"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/middleware"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/services"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/session"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

type AuthHandler struct {
	auth  *services.AuthService
	store *fibersession.Store
}

func NewAuthHandler(auth *services.AuthService, store *fibersession.Store) *AuthHandler {
	return &AuthHandler{auth: auth, store: store}
}

// LoginPage renders the login form, or goes straight to the chat when a
// session already exists.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	if session.User(sess) != nil {
		return c.Redirect("/chat")
	}
	return c.Render("login", fiber.Map{"Message": c.Query("msg")})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect("/?msg=" + url.QueryEscape("Invalid request"))
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrWrongPassword) {
			return c.Redirect("/?msg=" + url.QueryEscape(err.Error()))
		}
		return err
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	session.SetUser(sess, user)
	if err := sess.Save(); err != nil {
		return err
	}

	return c.Redirect("/chat")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Destroy(); err != nil {
		return err
	}
	return c.Redirect("/?msg=" + url.QueryEscape("Logged out"))
}

// ChatPage renders the chat room for the logged-in user. RequireLogin
// has already resolved the session identity.
func (h *AuthHandler) ChatPage(c *fiber.Ctx) error {
	return c.Render("chat", fiber.Map{"User": middleware.CurrentUser(c)})
}
