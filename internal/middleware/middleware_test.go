package middleware

import (
	"CitizenVoice/internal/entity"
	jwtPkg "CitizenVoice/pkg/jwt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T, m Middleware, handlers ...fiber.Handler) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", handlers...)

	return app
}

func signedToken(t *testing.T, roles ...entity.Role) string {
	t.Helper()

	token, _, err := jwtPkg.Sign(entity.UserLoginData{
		ID:    "01HZX0000000000000000000AB",
		Email: "jane@citizen.test",
		Name:  "Jane Doe",
		Roles: roles,
	}, time.Hour)
	require.NoError(t, err)

	return token
}

func TestTokenMiddleware(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecret, testSecret)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	m := New(logger)
	app := newTestApp(t, m, m.NewTokenMiddleware)

	t.Run("missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, entity.RoleCitizen))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(RequestIDKey))
	})
}

func TestRequireRoles(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecret, testSecret)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	m := New(logger)
	app := newTestApp(t, m, m.NewTokenMiddleware, m.RequireRoles(entity.RoleAdmin, entity.RoleOrganization))

	tests := []struct {
		name  string
		roles []entity.Role
		want  int
	}{
		{name: "admin passes", roles: []entity.Role{entity.RoleAdmin}, want: fiber.StatusOK},
		{name: "organization passes", roles: []entity.Role{entity.RoleOrganization}, want: fiber.StatusOK},
		{name: "citizen is forbidden", roles: []entity.Role{entity.RoleCitizen}, want: fiber.StatusForbidden},
		{name: "no roles is forbidden", roles: nil, want: fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signedToken(t, tt.roles...))

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	m := NewWithConfig(logger, Config{RequestsPerSecond: 0.001, Burst: 2})
	app := newTestApp(t, m, m.NewRateLimiter)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
}

func TestSanitizeRequestBody(t *testing.T) {
	body := `{"name":"Water Board","user":{"email":"a@b.test","password":"hunter22"}}`

	got := sanitizeRequestBody("/api/v1/organizations", body)

	assert.Contains(t, got, `"password":"[SECRET]"`)
	assert.Contains(t, got, `"email":"a@b.test"`)
	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("/x", "not json"))
}

func TestRequestIDMiddleware(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	app := newTestApp(t, New(logger))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "caller id kept", incoming: "trace-42_a", keep: true},
		{name: "newline rejected", incoming: "abc\ninjected", keep: false},
		{name: "oversized rejected", incoming: strings.Repeat("a", 65), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.incoming != "" {
				req.Header[RequestIDKey] = []string{tt.incoming}
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			got := resp.Header.Get(RequestIDKey)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.Len(t, got, 26)
			}
		})
	}
}
