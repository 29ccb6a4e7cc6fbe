package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/config"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/handlers"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/models"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/routes"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/services"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}))

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		RegisterTTL:   30 * time.Second,
		SessionExpiry: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}

	store := session.NewStore(cfg)
	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})

	routes.Setup(app, cfg, store,
		handlers.NewAuthHandler(services.NewAuthService(db), store),
		handlers.NewRegisterHandler(services.NewRegisterService(db, cfg), cfg),
		handlers.NewMessageHandler(services.NewMessageService(db)),
		handlers.NewHealthHandler(db),
	)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email, firstName, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:     email,
		FirstName: firstName,
		LastName:  "tester",
		Password:  string(hash),
	}).Error)
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// login performs the form login and returns the session cookie.
func login(t *testing.T, app *fiber.App, email, password string) *http.Cookie {
	t.Helper()
	resp := doRequest(t, app, formRequest(http.MethodPost, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/chat", resp.Header.Get("Location"))
	for _, c := range resp.Cookies() {
		if c.Name == "chat_session" {
			return c
		}
	}
	t.Fatal("session cookie not set on login")
	return nil
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}
