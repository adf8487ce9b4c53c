package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/hospital-platform/auth-service/internal/api/http"
	"github.com/hospital-platform/auth-service/internal/api/http/handlers"
	"github.com/hospital-platform/auth-service/internal/config"
	"github.com/hospital-platform/auth-service/internal/domain"
	"github.com/hospital-platform/auth-service/internal/events"
	"github.com/hospital-platform/auth-service/internal/observability"
	"github.com/hospital-platform/auth-service/internal/persistence"
	"github.com/hospital-platform/auth-service/internal/service"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = "user-" + user.Username
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:            "http-test-secret",
			TokenLifetimeSeconds: 3600,
			BcryptCost:           bcrypt.MinCost,
		},
	}
	svc := service.NewAuthService(cfg, newFakeUserRepo(), events.NewInMemoryDispatcher())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:   handlers.NewAuthHandler(svc),
	})
	return app, svc
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *nethttp.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func registerAlice(t *testing.T, app *fiber.App) {
	t.Helper()
	resp := postJSON(t, app, "/api/auth/register",
		`{"username":"alice","name":"Alice Smith","password":"s3cret","role":"DOCTOR"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestRegister_Success(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"username":"alice","name":"Alice Smith","password":"s3cret","role":"DOCTOR"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Name      string    `json:"name"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "alice", body.Username)
	assert.Equal(t, "Alice Smith", body.Name)
	assert.Equal(t, "DOCTOR", body.Role)
	assert.False(t, body.CreatedAt.IsZero())
}

func TestRegister_MalformedJSON(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/auth/register", `{"username":`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body errorBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "invalid payload", body.Error.Message)
}

func TestRegister_MissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing username", payload: `{"name":"Alice Smith","password":"s3cret","role":"DOCTOR"}`},
		{name: "missing name", payload: `{"username":"alice","password":"s3cret","role":"DOCTOR"}`},
		{name: "missing password", payload: `{"username":"alice","name":"Alice Smith","role":"DOCTOR"}`},
		{name: "missing role", payload: `{"username":"alice","name":"Alice Smith","password":"s3cret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/auth/register", tt.payload)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body errorBody
			decodeBody(t, resp, &body)
			assert.Contains(t, body.Error.Message, "required")
		})
	}
}

func TestRegister_UnknownRole(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"username":"alice","name":"Alice Smith","password":"s3cret","role":"WIZARD"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body errorBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	app, _ := newTestApp(t)
	registerAlice(t, app)

	resp := postJSON(t, app, "/api/auth/register",
		`{"username":"alice","name":"Other Alice","password":"s3cret","role":"NURSE"}`)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var body errorBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Contains(t, body.Error.Message, "alice")
}

func TestLogin_Success(t *testing.T) {
	app, svc := newTestApp(t)
	registerAlice(t, app)

	resp := postJSON(t, app, "/api/auth/login", `{"username":"alice","password":"s3cret"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Role     string `json:"role"`
		Name     string `json:"name"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "alice", body.Username)
	assert.Equal(t, "DOCTOR", body.Role)
	assert.Equal(t, "Alice Smith", body.Name)

	// The issued token asserts the username and verifies against the
	// service's token manager.
	require.NotEmpty(t, body.Token)
	assert.NoError(t, svc.TokenManager().Validate(body.Token, "alice"))
}

func TestLogin_MissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/auth/login", `{"username":"alice"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body errorBody
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Error.Message, "required")
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	app, _ := newTestApp(t)
	registerAlice(t, app)

	// Unknown username and wrong password produce the same 401 so the
	// endpoint cannot be used to enumerate accounts.
	unknown := postJSON(t, app, "/api/auth/login", `{"username":"mallory","password":"whatever"}`)
	wrongPass := postJSON(t, app, "/api/auth/login", `{"username":"alice","password":"wrong"}`)

	require.Equal(t, fiber.StatusUnauthorized, unknown.StatusCode)
	require.Equal(t, fiber.StatusUnauthorized, wrongPass.StatusCode)

	var unknownBody, wrongPassBody errorBody
	decodeBody(t, unknown, &unknownBody)
	decodeBody(t, wrongPass, &wrongPassBody)

	assert.Equal(t, "UNAUTHORIZED", unknownBody.Error.Code)
	assert.Equal(t, "UNAUTHORIZED", wrongPassBody.Error.Code)
	assert.Equal(t, "invalid username or password", unknownBody.Error.Message)
	assert.Equal(t, unknownBody.Error.Message, wrongPassBody.Error.Message)
}

func TestHealthLive(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "alive", body["status"])
	assert.Equal(t, "test", body["service"])
}
