package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartTokenRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CartTokenMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"token": c.GetString(CartTokenKey)})
	})
	return router
}

func TestCartTokenFromHeader(t *testing.T) {
	router := cartTokenRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Cart-Token", "my-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "my-token", w.Header().Get("X-Cart-Token"))
	assert.Contains(t, w.Body.String(), "my-token")
}

func TestCartTokenFromCookie(t *testing.T) {
	router := cartTokenRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "esencia_cart", Value: "cookie-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "cookie-token", w.Header().Get("X-Cart-Token"))
}

func TestCartTokenHeaderWinsOverCookie(t *testing.T) {
	router := cartTokenRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Cart-Token", "header-token")
	req.AddCookie(&http.Cookie{Name: "esencia_cart", Value: "cookie-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "header-token", w.Header().Get("X-Cart-Token"))
}

func TestCartTokenMinted(t *testing.T) {
	router := cartTokenRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	minted := w.Header().Get("X-Cart-Token")
	require.NotEmpty(t, minted)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "esencia_cart", cookies[0].Name)
	assert.Equal(t, minted, cookies[0].Value)
}
