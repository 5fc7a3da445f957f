package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
)

//go:generate mockery --name QuestionService --output ../mocks
type QuestionService interface {
	SetQuestions(ctx context.Context, tenantName string, req dto.SetQuestionsRequest) (dto.SetQuestionsResponse, error)
	StudentQuestions(ctx context.Context, tenantName string) ([]dto.StudentQuestion, error)
	AdminQuestions(ctx context.Context, tenantName string) ([]dto.AdminQuestion, error)
}

type QuestionHandler struct {
	*BaseHandler
	service QuestionService
}

func NewQuestionHandler(service QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// SetQuestions populates the tenant's question set on first call. Later
// calls get the frozen set back unchanged with a 200, never an error.
func (h *QuestionHandler) SetQuestions(c *gin.Context) {
	var req dto.SetQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Detail: err.Error()})
		return
	}

	resp, err := h.service.SetQuestions(h.RequestCtx(c), c.Param("tenant"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *QuestionHandler) StudentQuestions(c *gin.Context) {
	questions, err := h.service.StudentQuestions(h.RequestCtx(c), c.Param("tenant"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) AdminQuestions(c *gin.Context) {
	questions, err := h.service.AdminQuestions(h.RequestCtx(c), c.Param("tenant"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}
