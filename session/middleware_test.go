package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobpulse/gateway/config"
)

func newMiddlewareRouter(t *testing.T) (*gin.Engine, *Store, *[]*State) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := NewTokenService(&config.Config{SessionSecret: "test-secret", SessionExpiryHours: 1})
	store := NewStore(time.Hour)

	var seen []*State
	router := gin.New()
	router.Use(Middleware(tokens, store))
	router.GET("/probe", func(c *gin.Context) {
		seen = append(seen, FromContext(c))
		c.Status(http.StatusOK)
	})
	return router, store, &seen
}

func TestMiddlewareMintsCookieForNewSession(t *testing.T) {
	router, store, seen := newMiddlewareRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	assert.Equal(t, 1, store.Len())
	require.Len(t, *seen, 1)
	assert.NotNil(t, (*seen)[0])
}

func TestMiddlewareReusesValidCookie(t *testing.T) {
	router, store, seen := newMiddlewareRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	cookie := w.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, 1, store.Len())
	require.Len(t, *seen, 2)
	assert.Same(t, (*seen)[0], (*seen)[1])
}

func TestMiddlewareReplacesForgedCookie(t *testing.T) {
	router, store, seen := newMiddlewareRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Len(t, w.Result().Cookies(), 1)
	assert.NotEqual(t, "forged", w.Result().Cookies()[0].Value)
	assert.Equal(t, 1, store.Len())
	require.Len(t, *seen, 1)
}
