package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vitale/internal/credentials"
	"vitale/internal/db"
	"vitale/internal/services"
)

const (
	testUsername = "marco"
	testPassword = "HealthStrong2026!"
)

type stubAnalyzer struct {
	estimate services.NutritionEstimate
	err      error
}

func (stub *stubAnalyzer) Configured() bool {
	return true
}

func (stub *stubAnalyzer) AnalyzeMeal(string) (services.NutritionEstimate, error) {
	if stub.err != nil {
		return services.NutritionEstimate{}, stub.err
	}
	return stub.estimate, nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return buildTestApp(t, services.NewGeminiService("", ""), false)
}

func newTestAppWithAnalyzer(t *testing.T, analyzer MealAnalyzer) (*fiber.App, *gorm.DB) {
	t.Helper()
	return buildTestApp(t, analyzer, false)
}

func newTestAppWithCookieSecure(t *testing.T, cookieSecure bool) (*fiber.App, *gorm.DB) {
	t.Helper()
	return buildTestApp(t, services.NewGeminiService("", ""), cookieSecure)
}

func buildTestApp(t *testing.T, analyzer MealAnalyzer, cookieSecure bool) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "vitale-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	passwordHash, err := credentials.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	store := credentials.Store{
		Username:     testUsername,
		DisplayName:  "Marco",
		PasswordHash: passwordHash,
		SessionDays:  14,
	}

	handler := NewHandler(database, store, analyzer, "test-secret-key", time.UTC, cookieSecure)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, path string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request payload: %v", err)
	}
	request := httptest.NewRequest(method, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %q: %v", string(raw), err)
	}
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": testUsername,
		"password": testPassword,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
