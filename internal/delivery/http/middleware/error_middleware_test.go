package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/", handler)
	return r
}

func do(t *testing.T, r *gin.Engine) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		c.Error(apperror.BadRequest("All fields are required"))
	})

	w, resp := do(t, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "All fields are required", resp.Message)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.RequestID)
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		c.Error(errors.New("pq: relation does not exist"))
	})

	w, resp := do(t, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An unexpected error occurred. Please try again later.", resp.Message)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestErrorHandlerPassesThroughSuccess(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})

	w, resp := do(t, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestRequestIDRejectsOversizedHeader(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		response.Success(c, http.StatusOK, "ok", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, strings.Repeat("a", 200))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}
