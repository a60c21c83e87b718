package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newCORSRouter(allowed string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(allowed))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestCORS(t *testing.T) {
	t.Run("origem permitida recebe headers", func(t *testing.T) {
		router := newCORSRouter("http://localhost:3000, http://warbler.test")

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://warbler.test")
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://warbler.test" {
			t.Errorf("esperava origem ecoada, obteve '%s'", got)
		}
	})

	t.Run("origem não permitida é recusada", func(t *testing.T) {
		router := newCORSRouter("http://localhost:3000")

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://evil.test")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava status 403, obteve %d", w.Code)
		}
	})

	t.Run("curinga ecoa qualquer origem", func(t *testing.T) {
		router := newCORSRouter("*")

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://any.test")
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://any.test" {
			t.Errorf("esperava 'http://any.test', obteve '%s'", got)
		}
	})

	t.Run("preflight responde 204", func(t *testing.T) {
		router := newCORSRouter("*")

		w := httptest.NewRecorder()
		req := httptest.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://any.test")
		req.Header.Set("Access-Control-Request-Method", "GET")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("esperava status 204, obteve %d", w.Code)
		}
	})
}
