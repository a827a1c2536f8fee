package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifebalance-backend/internal/services"
)

type ChatHandler struct {
	chatService       services.ChatService
	scoreService      services.ScoreService
	assessmentService services.AssessmentService
}

func NewChatHandler(chatService services.ChatService, scoreService services.ScoreService, assessmentService services.AssessmentService) *ChatHandler {
	return &ChatHandler{
		chatService:       chatService,
		scoreService:      scoreService,
		assessmentService: assessmentService,
	}
}

// Seed returns the deterministic opening assistant turn for a fresh
// chat session.
func (ch *ChatHandler) Seed(c *gin.Context) {
	scores, err := ch.scoreService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": ch.chatService.Seed(scores)})
}

func (ch *ChatHandler) Send(c *gin.Context) {
	var req struct {
		Transcript []services.Turn `json:"transcript"`
		Message    string          `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is empty"})
		return
	}

	scores, err := ch.scoreService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	assessment, err := ch.assessmentService.Responses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// The model call itself never surfaces an error: a failed turn
	// comes back as the fixed apology message.
	reply := ch.chatService.Send(c.Request.Context(), req.Transcript, req.Message, scores, assessment)
	c.JSON(http.StatusOK, gin.H{"message": reply})
}
