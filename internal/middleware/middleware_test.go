package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/amaumene/tmdbfind/pkg/logger"
)

func setupRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(logger.NewWithWriter(buf, "info")), CORS())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/fail", func(c *gin.Context) { c.String(http.StatusBadGateway, "fail") })
	return r
}

func TestCORS(t *testing.T) {
	router := setupRouter(&bytes.Buffer{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.OPTIONS("/ok", func(c *gin.Context) { c.String(http.StatusOK, "should not run") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/ok", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestLogger_LevelFromStatus(t *testing.T) {
	var buf bytes.Buffer
	router := setupRouter(&buf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fail?api_key=secret", nil)
	router.ServeHTTP(w, req)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "/fail")
	assert.NotContains(t, out, "secret")
}
