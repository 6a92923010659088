package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mariveldt/velle/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "velle-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	app := fiber.New(fiber.Config{AppName: "Velle Test"})
	RegisterRoutes(app, NewHandler(database, "test-secret", time.UTC, false))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// registerAndLogin creates a fresh account and returns a bearer token for it.
func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	registerResponse := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":        email,
		"password":     "StrongPass1",
		"display_name": "Test",
	})
	registerResponse.Body.Close()
	if registerResponse.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", registerResponse.StatusCode)
	}

	loginResponse := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "StrongPass1",
	})
	if loginResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", loginResponse.StatusCode)
	}

	var login struct {
		Token string `json:"token"`
	}
	decodeJSON(t, loginResponse, &login)
	if login.Token == "" {
		t.Fatal("expected a token in the login response")
	}
	return login.Token
}
