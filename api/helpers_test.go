package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mpetrov/portfolio-site-backend/database"
	"github.com/mpetrov/portfolio-site-backend/services"
)

const testJWTSecret = "test-secret"

// newTestRouter wires the full router against a fresh in-memory SQLite
// database and a temp upload directory, the same way main does against MySQL.
func newTestRouter(t *testing.T) (*chi.Mux, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	d := database.New(db)
	require.NoError(t, d.Migrate())
	require.NoError(t, d.SeedDefaultAdmin(context.Background()))

	imageStore := services.NewImageStore(t.TempDir())
	require.NoError(t, imageStore.EnsureDir())

	router := newRouter(d, imageStore, withConfig(map[string]string{
		"JWT_SECRET": testJWTSecret,
	}))
	return router, d
}

// doJSON performs a JSON request against the router. An empty token leaves
// the Authorization header unset.
func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// loginAsAdmin logs in with the seeded default credentials and returns the
// issued token.
func loginAsAdmin(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": database.DefaultAdminUsername,
		"password": database.DefaultAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
