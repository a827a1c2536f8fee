package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/lifebalance-backend/internal/services"
)

type ScoreHandler struct {
	scoreService services.ScoreService
}

func NewScoreHandler(scoreService services.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

func (sh *ScoreHandler) Get(c *gin.Context) {
	scores, err := sh.scoreService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores.Map()})
}

func (sh *ScoreHandler) Update(c *gin.Context) {
	var req struct {
		Scores map[string]int `json:"scores"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	scores, err := sh.scoreService.Update(c.Request.Context(), req.Scores)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores.Map()})
}

func (sh *ScoreHandler) SetArea(c *gin.Context) {
	var req struct {
		Value int `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	scores, err := sh.scoreService.SetArea(c.Request.Context(), c.Param("area"), req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores.Map()})
}
