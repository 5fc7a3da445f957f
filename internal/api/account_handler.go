package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
)

//go:generate mockery --name AccountService --output ../mocks
type AccountService interface {
	Signup(ctx context.Context, req dto.AuthRequest) (dto.SignupResponse, error)
	Login(ctx context.Context, req dto.AuthRequest) (dto.MessageResponse, error)
}

type AccountHandler struct {
	*BaseHandler
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Detail: err.Error()})
		return
	}

	resp, err := h.service.Signup(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login validates credentials and nothing more: no session, no token. The
// boundary of this call ends at "credentials valid".
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Detail: err.Error()})
		return
	}

	resp, err := h.service.Login(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
