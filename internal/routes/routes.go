package routes

import (
	"github.com/RomiSinizkey/web-programming-chatroom/internal/config"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/handlers"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/middleware"
	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	store *fibersession.Store,
	authHandler *handlers.AuthHandler,
	registerHandler *handlers.RegisterHandler,
	messageHandler *handlers.MessageHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Pages
	app.Get("/", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/chat", middleware.RequireLogin(store), authHandler.ChatPage)

	// Registration wizard; step 2 is gated on the pending token
	app.Get("/register", registerHandler.Step1Page)
	app.Post("/register", registerHandler.Step1Submit)
	registerToken := middleware.RegisterTokenRequired(cfg)
	app.Get("/register/password", registerToken, registerHandler.Step2Page)
	app.Post("/register/password", registerToken, registerHandler.Step2Submit)

	// Form-based message routes (redirect flow)
	app.Post("/messages", middleware.RequireLogin(store), messageHandler.CreateForm)
	app.Post("/messages/delete", middleware.RequireLogin(store), messageHandler.DeleteForm)

	// JSON API
	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	messages := api.Group("/messages", middleware.RequireAuth(store))
	messages.Get("/", messageHandler.List)
	messages.Get("/search", messageHandler.Search)
	messages.Post("/", messageHandler.Create)
	messages.Patch("/:id", messageHandler.Edit)
	messages.Post("/delete-many", messageHandler.DeleteMany)
}
