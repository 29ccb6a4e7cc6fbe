package handlers

import (
	"errors"
	"net/url"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/config"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/dto"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/middleware"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/services"
	"github.com/gofiber/fiber/v2"
)

// RegisterHandler exposes the two-step signup wizard. Step 1 collects
// identity fields and issues the pending-registration cookie; step 2
// collects the password and finalizes.
type RegisterHandler struct {
	register *services.RegisterService
	cfg      *config.Config
}

func NewRegisterHandler(register *services.RegisterService, cfg *config.Config) *RegisterHandler {
	return &RegisterHandler{register: register, cfg: cfg}
}

func (h *RegisterHandler) Step1Page(c *fiber.Ctx) error {
	data := fiber.Map{"Step": 1, "Error": c.Query("err")}
	// prefill from a still-valid token so a back-navigation keeps the fields
	if raw := c.Cookies(middleware.RegisterCookie); raw != "" {
		if pending, err := h.register.ParseToken(raw); err == nil {
			data["Data"] = pending
		}
	}
	return c.Render("register", data)
}

func (h *RegisterHandler) Step1Submit(c *fiber.Ctx) error {
	var req dto.RegisterStep1Request
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect("/register?err=" + url.QueryEscape(services.ErrAllFieldsRequired.Error()))
	}

	token, err := h.register.Start(req.Email, req.FirstName, req.LastName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAllFieldsRequired),
			errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, services.ErrInvalidName),
			errors.Is(err, services.ErrEmailTaken):
			return c.Redirect("/register?err=" + url.QueryEscape(err.Error()))
		default:
			return err
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.RegisterCookie,
		Value:    token,
		MaxAge:   int(h.cfg.RegisterTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/register/password")
}

func (h *RegisterHandler) Step2Page(c *fiber.Ctx) error {
	pending, err := middleware.PendingRegistration(c)
	if err != nil {
		return c.Redirect("/register")
	}
	return c.Render("register", fiber.Map{"Step": 2, "Data": pending, "Error": c.Query("err")})
}

func (h *RegisterHandler) Step2Submit(c *fiber.Ctx) error {
	pending, err := middleware.PendingRegistration(c)
	if err != nil {
		return c.Redirect("/register")
	}

	var req dto.RegisterStep2Request
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect("/register/password?err=" + url.QueryEscape(services.ErrPasswordRequired.Error()))
	}

	if err := h.register.Finalize(pending, req.Password, req.Password2); err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			// the email was claimed during the wizard's lifetime; the
			// token is useless now, so discard it and restart
			c.ClearCookie(middleware.RegisterCookie)
			return c.Redirect("/register?err=" + url.QueryEscape(err.Error()))
		case errors.Is(err, services.ErrPasswordRequired),
			errors.Is(err, services.ErrPasswordMismatch),
			errors.Is(err, services.ErrPasswordLength):
			// token is kept so the user can correct and resubmit
			return c.Redirect("/register/password?err=" + url.QueryEscape(err.Error()))
		default:
			return err
		}
	}

	c.ClearCookie(middleware.RegisterCookie)
	return c.Redirect("/?msg=" + url.QueryEscape("you are registered"))
}
