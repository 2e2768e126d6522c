package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/config"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/http/handlers"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
)

type fakeGateway struct{ err error }

func (f *fakeGateway) CreateIntent(amount int64, currency string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "cs_test_123", nil
}

// newTestApp builds the real route table over a seeded in-memory store.
// Seed accounts: admin@bazar.test, selim@bazar.test (seller),
// bithi@bazar.test (buyer).
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	cfg := config.Config{TokenSecret: "test-secret", TokenTTLDays: 10}
	deps := handlers.NewDeps(db, cfg, &fakeGateway{})
	app := fiber.New()
	handlers.Register(app, deps)
	return app
}

// bearer fetches a real token through GET /jwt.
func bearer(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/jwt?email="+email, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("jwt for %s: status %d", email, resp.StatusCode)
	}
	var body struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.AccessToken == "" {
		t.Fatalf("empty token for %s", email)
	}
	return "Bearer " + body.AccessToken
}

// doJSON fires a request and decodes a JSON object response when there is one.
func doJSON(t *testing.T, app *fiber.App, method, target string, payload any, auth string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	return resp, m
}
