package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdkim-dev/boardgo/internal/token"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestRouter(t *testing.T) (*gin.Engine, *token.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := token.New(testSecret, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Gate(codec, nil))

	r.GET("/login", func(c *gin.Context) {
		_, ok := PrincipalFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"principal": ok})
	})
	r.GET("/whoami", HandleWhoAmI)

	api := r.Group("/api")
	api.Use(RequireAuth())
	api.GET("/ping", func(c *gin.Context) {
		p, _ := PrincipalFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "username": p.Username, "role": p.Role})
	})

	return r, codec
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAllowListedPathBypassesGate(t *testing.T) {
	r, codec := newTestRouter(t)

	// even with a valid token, allow-listed paths install no principal
	tok, err := codec.Issue(1, "alice", "a@x.com", "ROLE_USER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})

	w := perform(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"principal":false}`, w.Body.String())
}

func TestGateInstallsPrincipalFromCookie(t *testing.T) {
	r, codec := newTestRouter(t)

	tok, err := codec.Issue(42, "alice", "a@x.com", "ROLE_USER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})

	w := perform(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42,"username":"alice","role":"ROLE_USER"}`, w.Body.String())
}

func TestGateFallsBackToBearerHeader(t *testing.T) {
	r, codec := newTestRouter(t)

	tok, err := codec.Issue(7, "bob", "b@x.com", "ROLE_USER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	w := perform(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"username":"bob","role":"ROLE_USER"}`, w.Body.String())
}

func TestMissingTokenIsAnonymousNotError(t *testing.T) {
	r, _ := newTestRouter(t)

	// the gate lets the request through; RequireAuth rejects it
	w := perform(r, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a gated route without RequireAuth stays reachable
	w = perform(r, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestInvalidTokenDegradesToAnonymous(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage.token.value"})
	w := perform(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage.token.value"})
	w = perform(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestExpiredTokenDegradesToAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expired, err := token.New(testSecret, -time.Minute)
	require.NoError(t, err)
	tok, err := expired.Issue(1, "alice", "a@x.com", "ROLE_USER")
	require.NoError(t, err)

	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})

	w := perform(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRedirectsPageRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	codec, err := token.New(testSecret, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(Gate(codec, nil))
	r.GET("/dashboard", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := perform(r, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
