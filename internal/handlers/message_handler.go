package handlers

import (
	"errors"
	"strconv"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/dto"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/middleware"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// --- JSON API (behind RequireAuth) ---

func (h *MessageHandler) List(c *fiber.Ctx) error {
	views, err := h.messages.List("")
	if err != nil {
		return err
	}
	return c.JSON(views)
}

func (h *MessageHandler) Search(c *fiber.Ctx) error {
	views, err := h.messages.List(c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(views)
}

func (h *MessageHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}

	id, err := h.messages.Create(user.Email, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrTextRequired) || errors.Is(err, services.ErrTextTooLong) {
			return badRequest(c, err.Error())
		}
		return err
	}

	return c.JSON(dto.CreateMessageResponse{OK: true, ID: id})
}

func (h *MessageHandler) Edit(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badRequest(c, "Invalid message ID")
	}

	var req dto.EditMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request")
	}

	if err := h.messages.Edit(user.Email, uint(id), req.Text); err != nil {
		switch {
		case errors.Is(err, services.ErrTextRequired), errors.Is(err, services.ErrTextTooLong):
			return badRequest(c, err.Error())
		case errors.Is(err, services.ErrMessageNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		default:
			return err
		}
	}

	return c.JSON(dto.OKResponse{OK: true})
}

func (h *MessageHandler) DeleteMany(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.DeleteManyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "ids must be an array")
	}

	deleted, err := h.messages.DeleteMany(user.Email, req.IDs)
	if err != nil {
		if errors.Is(err, services.ErrNoValidIDs) {
			return badRequest(c, err.Error())
		}
		return err
	}

	return c.JSON(dto.DeleteManyResponse{OK: true, Deleted: deleted})
}

// --- page forms (behind RequireLogin, redirect-based) ---

func (h *MessageHandler) CreateForm(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect("/chat")
	}

	if _, err := h.messages.Create(user.Email, req.Text); err != nil {
		if errors.Is(err, services.ErrTextRequired) || errors.Is(err, services.ErrTextTooLong) {
			return c.Redirect("/chat")
		}
		return err
	}
	return c.Redirect("/chat")
}

func (h *MessageHandler) DeleteForm(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.FormValue("id"))
	if err != nil || id <= 0 {
		return c.Redirect("/chat")
	}

	if err := h.messages.Delete(user.Email, uint(id)); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) || errors.Is(err, services.ErrNotOwner) {
			return c.Redirect("/chat")
		}
		return err
	}
	return c.Redirect("/chat")
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}
