package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tijara-market/internal/adapters/http/routes"
	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/config"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "handler-test-secret",
			AccessTokenMins: 15,
		},
	}

	app := fiber.New()
	routes.Setup(app, db, cfg, nil)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	// No timeout: bcrypt at cost 12 can exceed the default one second.
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestRegisterEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/auth/register", fiber.Map{
		"name":     "Vendor One",
		"email":    "vendor@example.com",
		"password": "secret-pass-1",
		"role":     "vendor",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "vendor@example.com", user["email"])
	assert.Equal(t, "vendor", user["role"])
	assert.Nil(t, user["password"])

	// The session cookie is set alongside the body token.
	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "access_token" {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)
}

func TestRegisterEndpointValidation(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/auth/register", fiber.Map{
		"name": "X", "email": "x@x.com", "password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/v1/auth/register", fiber.Map{
		"name": "X", "email": "x@x.com", "password": "secret-pass-1", "role": "admin",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	payload := fiber.Map{
		"name": "First", "email": "dup@example.com", "password": "secret-pass-1",
	}

	resp := postJSON(t, app, "/api/v1/auth/register", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/v1/auth/register", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginThenMe(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/auth/register", fiber.Map{
		"name": "User", "email": "me@example.com", "password": "secret-pass-1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/v1/auth/login", fiber.Map{
		"email": "ME@example.com", "password": "secret-pass-1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token := body["data"].(map[string]interface{})["access_token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, meResp.StatusCode)

	meBody := decodeBody(t, meResp)
	user := meBody["data"].(map[string]interface{})
	assert.Equal(t, "me@example.com", user["email"])
	assert.Equal(t, "customer", user["role"])
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/auth/login", fiber.Map{
		"email": "nobody@example.com", "password": "secret-pass-1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeRequiresToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cleared *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "access_token" {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}
