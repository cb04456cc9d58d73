package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"mediatrack/config"
	"mediatrack/internal/delivery/http/middleware"
	"mediatrack/internal/delivery/http/validator"
	"mediatrack/internal/domain/entity"
	"mediatrack/internal/infra/auth"
	"mediatrack/internal/infra/session"
	mockRepo "mediatrack/internal/mocks/repository"
	"mediatrack/internal/usecase/impl"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authFlowFixture spins up the real token service, hasher and a Redis-backed
// session registry behind the HTTP handlers. Only user persistence is mocked.
type authFlowFixture struct {
	echo     *echo.Echo
	handler  *AuthHandler
	authMW   *middleware.AuthMiddleware
	userRepo *mockRepo.MockUserRepository
	cfg      *config.Config
}

func newAuthFlowFixture(t *testing.T) *authFlowFixture {
	t.Helper()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:          "handler-test-secret",
			AccessTokenTTL:  30 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
		Cookie: &config.CookieConfig{
			Name:     "refresh_token",
			Path:     "/api/v1/auth",
			HTTPOnly: true,
			SameSite: "lax",
		},
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userRepo := mockRepo.NewMockUserRepository(t)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Sessions:     session.NewRedisSessionRegistry(client),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	return &authFlowFixture{
		echo:     e,
		handler:  NewAuthHandler(authUC, tokenSvc, cfg, logger),
		authMW:   middleware.NewAuthMiddleware(authUC),
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func testCtx() interface{} {
	return mock.Anything
}

func mockAnyUser() interface{} {
	return mock.AnythingOfType("*entity.User")
}

func refreshCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("response carries no %q cookie", name)

	return nil
}

func TestAuthHandler_LoginSetsRefreshCookie(t *testing.T) {
	fx := newAuthFlowFixture(t)

	hasher := auth.NewBcryptHasher(fx.cfg)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	user := &entity.User{ID: 7, Login: "alice", Email: "alice@example.com", PasswordHash: hash, IsActive: true}
	fx.userRepo.EXPECT().FindByLoginOrEmail(testCtx(), "alice").Return(user, nil)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	c := fx.echo.NewContext(req, rec)
	require.NoError(t, fx.handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AccessToken)
	assert.Equal(t, entity.TokenTypeBearer, body.TokenType)

	cookie := refreshCookie(t, rec, "refresh_token")
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Positive(t, cookie.MaxAge)
}

func TestAuthHandler_RefreshRotatesCookie(t *testing.T) {
	fx := newAuthFlowFixture(t)

	hasher := auth.NewBcryptHasher(fx.cfg)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	user := &entity.User{ID: 7, Login: "alice", Email: "alice@example.com", PasswordHash: hash, IsActive: true}
	fx.userRepo.EXPECT().FindByLoginOrEmail(testCtx(), "alice").Return(user, nil)

	// Login first to obtain the cookie.
	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	loginRec := httptest.NewRecorder()
	require.NoError(t, fx.handler.Login(fx.echo.NewContext(loginReq, loginRec)))

	oldCookie := refreshCookie(t, loginRec, "refresh_token")

	refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	refreshReq.AddCookie(oldCookie)
	refreshRec := httptest.NewRecorder()
	require.NoError(t, fx.handler.Refresh(fx.echo.NewContext(refreshReq, refreshRec)))

	assert.Equal(t, http.StatusOK, refreshRec.Code)
	newCookie := refreshCookie(t, refreshRec, "refresh_token")
	assert.NotEqual(t, oldCookie.Value, newCookie.Value)

	// The superseded token must no longer be redeemable.
	replayReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	replayReq.AddCookie(oldCookie)
	replayRec := httptest.NewRecorder()
	err = fx.handler.Refresh(fx.echo.NewContext(replayReq, replayRec))
	require.Error(t, err)
}

func TestAuthHandler_RefreshWithoutCookie(t *testing.T) {
	fx := newAuthFlowFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	rec := httptest.NewRecorder()

	err := fx.handler.Refresh(fx.echo.NewContext(req, rec))
	require.Error(t, err)
}

func TestAuthHandler_LogoutClearsCookieAndRevokesSession(t *testing.T) {
	fx := newAuthFlowFixture(t)

	hasher := auth.NewBcryptHasher(fx.cfg)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	user := &entity.User{ID: 7, Login: "alice", Email: "alice@example.com", PasswordHash: hash, IsActive: true}
	fx.userRepo.EXPECT().FindByLoginOrEmail(testCtx(), "alice").Return(user, nil)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	loginRec := httptest.NewRecorder()
	require.NoError(t, fx.handler.Login(fx.echo.NewContext(loginReq, loginRec)))

	cookie := refreshCookie(t, loginRec, "refresh_token")

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	logoutRec := httptest.NewRecorder()
	logoutCtx := fx.echo.NewContext(logoutReq, logoutRec)
	logoutCtx.Set(middleware.ContextKeyCurrentUser, user)

	require.NoError(t, fx.handler.Logout(logoutCtx))
	assert.Equal(t, http.StatusNoContent, logoutRec.Code)

	cleared := refreshCookie(t, logoutRec, "refresh_token")
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// The refresh token from before logout is dead.
	refreshReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	refreshReq.AddCookie(cookie)
	refreshRec := httptest.NewRecorder()
	err = fx.handler.Refresh(fx.echo.NewContext(refreshReq, refreshRec))
	require.Error(t, err)
}

func TestAuthHandler_RegisterReturnsPublicView(t *testing.T) {
	fx := newAuthFlowFixture(t)

	fx.userRepo.EXPECT().ExistsByLoginOrEmail(testCtx(), "alice", "alice@example.com").Return(false, nil)
	fx.userRepo.EXPECT().
		Create(testCtx(), mockAnyUser()).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)

	payload := `{"email":"alice@example.com","login":"alice","password":"secret123","name":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, fx.handler.Register(fx.echo.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(42), body["id"])
	assert.Equal(t, "alice", body["login"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_RegisterRejectsBadLogin(t *testing.T) {
	fx := newAuthFlowFixture(t)

	payload := `{"email":"alice@example.com","login":"a!","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := fx.handler.Register(fx.echo.NewContext(req, rec))
	require.Error(t, err)
}

func TestAuthMiddleware_GateKeepsUnauthenticatedOut(t *testing.T) {
	fx := newAuthFlowFixture(t)

	var reached bool
	next := func(c echo.Context) error {
		reached = true

		return nil
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()

	err := fx.authMW.Authenticate(next)(fx.echo.NewContext(req, rec))
	require.Error(t, err)
	assert.False(t, reached)
}

func TestAuthMiddleware_PassesUserThrough(t *testing.T) {
	fx := newAuthFlowFixture(t)

	hasher := auth.NewBcryptHasher(fx.cfg)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	user := &entity.User{ID: 7, Login: "alice", Email: "alice@example.com", PasswordHash: hash, IsActive: true}
	fx.userRepo.EXPECT().FindByLoginOrEmail(testCtx(), "alice").Return(user, nil)
	fx.userRepo.EXPECT().FindByID(testCtx(), int64(7)).Return(user, nil)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	loginRec := httptest.NewRecorder()
	require.NoError(t, fx.handler.Login(fx.echo.NewContext(loginReq, loginRec)))

	var body tokenResponse
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &body))

	meReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	meReq.Header.Set(echo.HeaderAuthorization, "Bearer "+body.AccessToken)
	meRec := httptest.NewRecorder()

	meCtx := fx.echo.NewContext(meReq, meRec)
	require.NoError(t, fx.authMW.Authenticate(fx.handler.Me)(meCtx))
	assert.Equal(t, http.StatusOK, meRec.Code)
	assert.Contains(t, meRec.Body.String(), `"login":"alice"`)
}
