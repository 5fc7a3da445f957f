package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
)

//go:generate mockery --name QuizService --output ../mocks
type QuizService interface {
	Submit(ctx context.Context, tenantName string, req dto.QuizSubmissionRequest) (dto.QuizResultResponse, error)
}

type QuizHandler struct {
	*BaseHandler
	service QuizService
}

func NewQuizHandler(service QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

func (h *QuizHandler) Submit(c *gin.Context) {
	var req dto.QuizSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Detail: err.Error()})
		return
	}

	resp, err := h.service.Submit(h.RequestCtx(c), c.Param("tenant"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
