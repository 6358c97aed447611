package controllers

import (
	"net/http"
	"strconv"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

func (cc *ChatController) SendMessage(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	reply, err := cc.chat.SendMessage(userID, input.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "assistant is unavailable, try again"})
		return
	}
	c.JSON(http.StatusOK, reply)
}

func (cc *ChatController) History(c *gin.Context) {
	userID := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	msgs, err := cc.chat.History(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
