package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/demanda-dev/demanda/db"
	"github.com/demanda-dev/demanda/internal/auth"
	"github.com/demanda-dev/demanda/internal/config"
	"github.com/demanda-dev/demanda/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// In-memory sqlite lives per connection; a second pooled connection
	// would see an empty database.
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		Env:         "test",
		Port:        "0",
		DatabaseURL: "test",
		JWTSecret:   "test-secret",
	}

	return router.New(cfg, database, zerolog.Nop()), database
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if cookie != nil {
		req.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return recorder
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}

	return nil
}

// registerAndLogin provisions a user and returns their session cookie.
func registerAndLogin(t *testing.T, r *gin.Engine, name, email, password string) *http.Cookie {
	t.Helper()

	body := `{"name":"` + name + `","email":"` + email + `","password":"` + password + `"}`
	recorder := doJSON(t, r, http.MethodPost, "/api/auth/register", body, nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("register returned %d: %s", recorder.Code, recorder.Body.String())
	}

	body = `{"email":"` + email + `","password":"` + password + `"}`
	recorder = doJSON(t, r, http.MethodPost, "/api/auth/login", body, nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", recorder.Code, recorder.Body.String())
	}

	cookie := sessionCookie(t, recorder)

	if cookie == nil || cookie.Value == "" {
		t.Fatal("login did not set a session cookie")
	}

	return cookie
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}
