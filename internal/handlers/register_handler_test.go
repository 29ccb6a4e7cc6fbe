package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func startWizard(t *testing.T, app *fiber.App, email string) *http.Cookie {
	t.Helper()
	resp := doRequest(t, app, formRequest(http.MethodPost, "/register", url.Values{
		"email":     {email},
		"firstName": {"Alice"},
		"lastName":  {"Smith"},
	}))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/register/password", resp.Header.Get("Location"))
	for _, c := range resp.Cookies() {
		if c.Name == "register_data" {
			return c
		}
	}
	t.Fatal("register_data cookie not set")
	return nil
}

func TestRegisterWizard_FullFlow(t *testing.T) {
	app, db := newTestApp(t)
	cookie := startWizard(t, app, "Alice@Example.com")

	// step 2 page is reachable with the token
	req := httptest.NewRequest(http.MethodGet, "/register/password", nil)
	req.AddCookie(cookie)
	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// finalize
	req = formRequest(http.MethodPost, "/register/password", url.Values{
		"password":  {"secret"},
		"password2": {"secret"},
	})
	req.AddCookie(cookie)
	resp = doRequest(t, app, req)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?msg=you+are+registered", resp.Header.Get("Location"))
	assertCookieCleared(t, resp, "register_data")

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "alice@example.com").Error)
	assert.Equal(t, "alice", user.FirstName)
	assert.Equal(t, "smith", user.LastName)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))

	// registering the same email twice succeeds exactly once
	resp = doRequest(t, app, formRequest(http.MethodPost, "/register", url.Values{
		"email":     {"ALICE@example.com"},
		"firstName": {"Alice"},
		"lastName":  {"Smith"},
	}))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/register?err=")
	assert.Contains(t, resp.Header.Get("Location"), "already+in+use")
}

func TestRegisterStep1_InvalidInput(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name   string
		values url.Values
	}{
		{"missing fields", url.Values{"email": {"a@b.com"}}},
		{"bad email", url.Values{"email": {"not-an-email"}, "firstName": {"alice"}, "lastName": {"smith"}}},
		{"bad name", url.Values{"email": {"a@b.com"}, "firstName": {"al"}, "lastName": {"smith"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, formRequest(http.MethodPost, "/register", tt.values))
			require.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Location"), "/register?err=")
		})
	}
}

func TestRegisterStep2_NoToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/register/password", nil))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))
}

func TestRegisterStep2_PasswordMismatchKeepsToken(t *testing.T) {
	app, db := newTestApp(t)
	cookie := startWizard(t, app, "alice@example.com")

	req := formRequest(http.MethodPost, "/register/password", url.Values{
		"password":  {"secret"},
		"password2": {"different"},
	})
	req.AddCookie(cookie)
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/register/password?err=Passwords+do+not+match")

	// token not discarded; resubmitting with matching passwords works
	req = formRequest(http.MethodPost, "/register/password", url.Values{
		"password":  {"secret"},
		"password2": {"secret"},
	})
	req.AddCookie(cookie)
	resp = doRequest(t, app, req)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?msg=you+are+registered", resp.Header.Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterStep2_EmailClaimedDuringWizard(t *testing.T) {
	app, db := newTestApp(t)
	cookie := startWizard(t, app, "alice@example.com")

	// the email gets registered while the wizard is open
	seedUser(t, db, "alice@example.com", "alice", "secret")

	req := formRequest(http.MethodPost, "/register/password", url.Values{
		"password":  {"secret"},
		"password2": {"secret"},
	})
	req.AddCookie(cookie)
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/register?err=")
	assert.Contains(t, resp.Header.Get("Location"), "already+in+use")
	assertCookieCleared(t, resp, "register_data")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func assertCookieCleared(t *testing.T, resp *http.Response, name string) {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			assert.True(t, c.MaxAge < 0 || c.Value == "", "cookie %s should be cleared", name)
			return
		}
	}
	t.Fatalf("expected a clearing Set-Cookie for %s", name)
}
