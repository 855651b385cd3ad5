package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apptchat/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func stub(name string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, name) }
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		HomeHandler:        stub("home"),
		HealthHandler:      stub("health"),
		ChatHandler:        stub("chat"),
		ChatHistoryHandler: stub("history"),
	})

	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/", "home"},
		{http.MethodGet, "/health", "health"},
		{http.MethodPost, "/chat", "chat"},
		{http.MethodGet, "/chat/history", "history"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := require.New(t)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}")))
			req.Equal(http.StatusOK, w.Code)
			req.Equal(tt.want, w.Body.String())
		})
	}
}

func TestRegisterRoutes_CORSPreflight(t *testing.T) {
	req := require.New(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		HomeHandler:        stub("home"),
		HealthHandler:      stub("health"),
		ChatHandler:        stub("chat"),
		ChatHistoryHandler: stub("history"),
	})

	preflight := httptest.NewRequest(http.MethodOptions, "/chat", nil)
	preflight.Header.Set("Origin", "https://frontend.test")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, preflight)

	req.Equal(http.StatusNoContent, w.Code)
	req.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}
