package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/repository"
	"TerraNebular-Backend/internal/usecase"
)

const maxQuestionLength = 1000

var supportedLanguages = map[string]bool{
	"en": true,
	"rw": true,
	"fr": true,
}

// AskHandler serves the AI question endpoint.
type AskHandler struct {
	askUseCase usecase.AskUseCase
}

func NewAskHandler(askUseCase usecase.AskUseCase) *AskHandler {
	return &AskHandler{
		askUseCase: askUseCase,
	}
}

// AskQuestion POST /api/ai/question
func (h *AskHandler) AskQuestion(c *gin.Context) {
	var req model.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "question is required",
		})
		return
	}
	if len(req.Question) > maxQuestionLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "question exceeds maximum length of 1000 characters",
		})
		return
	}

	if !repository.WithinServiceArea(req.Lat, req.Lng) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "out_of_bounds",
			"message": "Coordinates must be within Rwanda (lat -3..-1, lng 28..31)",
		})
		return
	}

	if req.Language != "" && !supportedLanguages[req.Language] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "language must be one of: en, rw, fr",
		})
		return
	}

	req.UserAgent = c.Request.UserAgent()
	req.IPAddress = c.ClientIP()

	result, err := h.askUseCase.Ask(c.Request.Context(), &req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
