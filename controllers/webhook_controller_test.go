package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhaval-dalia/personal-diet-tracker-master/middlewares"
	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyRouter(engineURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	hook := services.NewWebhookServiceWithBase(engineURL)
	ctl := NewWebhookController(hook)

	webhook := r.Group("/webhook")
	webhook.Use(middlewares.CORSMiddleware())
	{
		webhook.POST("/chat", ctl.ProxyChat)
		webhook.POST("/recommendations", ctl.ProxyRecommendations)
		webhook.OPTIONS("/chat", ctl.Preflight)
		webhook.OPTIONS("/recommendations", ctl.Preflight)
	}
	return r
}

func TestProxyForwardsBodyUnchanged(t *testing.T) {
	var forwarded string
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		buf.ReadFrom(r.Body)
		forwarded = buf.String()

		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer engine.Close()

	router := newProxyRouter(engine.URL)

	payload := `{"user_id":1,"message":"hello","context":{"platform":"web","source":"chat_widget"}}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/chat", bytes.NewBufferString(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, payload, forwarded)
	assert.JSONEq(t, `{"message": "ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProxyRelaysEngineStatus(t *testing.T) {
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "bad meal data"}`))
	}))
	defer engine.Close()

	router := newProxyRouter(engine.URL)

	req := httptest.NewRequest(http.MethodPost, "/webhook/recommendations", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error": "bad meal data"}`, w.Body.String())
}

func TestProxyEngineUnreachable(t *testing.T) {
	// point at a closed server
	engine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	engine.Close()

	router := newProxyRouter(engine.URL)

	req := httptest.NewRequest(http.MethodPost, "/webhook/chat", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestProxyPreflight(t *testing.T) {
	router := newProxyRouter("http://unused")

	req := httptest.NewRequest(http.MethodOptions, "/webhook/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}
