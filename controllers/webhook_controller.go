package controllers

import (
	"io"
	"log"
	"net/http"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
)

// WebhookController hosts the same-origin proxy routes. Each handler forwards
// the JSON body 1:1 to the workflow engine and relays status and body back;
// no payload inspection beyond reading the bytes.
type WebhookController struct {
	hook *services.WebhookService
}

func NewWebhookController(hook *services.WebhookService) *WebhookController {
	return &WebhookController{hook: hook}
}

func (wc *WebhookController) ProxyChat(c *gin.Context) {
	wc.proxy(c, "/chat")
}

func (wc *WebhookController) ProxyRecommendations(c *gin.Context) {
	wc.proxy(c, "/recommendations")
}

// Preflight exists so OPTIONS requests match a route; the CORS middleware
// answers them before this handler runs.
func (wc *WebhookController) Preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (wc *WebhookController) proxy(c *gin.Context, path string) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	status, respBody, err := wc.hook.Forward(path, body)
	if err != nil {
		log.Printf("webhook proxy %s failed: %v", path, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "workflow engine unavailable"})
		return
	}

	c.Data(status, "application/json", respBody)
}
