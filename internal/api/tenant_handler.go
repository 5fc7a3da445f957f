package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
	"github.com/vinhph2/quizhub-api/internal/service"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (dto.CreateTenantResponse, error)
	Exists(ctx context.Context, name string) (bool, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant registers a tenant. Names are compared case-insensitively
// after trimming, so a second registration differing only in case conflicts.
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Detail: err.Error()})
		return
	}

	resp, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		if errors.Is(err, service.ErrTenantExists) {
			c.JSON(http.StatusBadRequest, dto.Error{Detail: fmt.Sprintf("Tenant '%s' already exists", req.Name)})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckTenant reports whether a tenant name is registered. A missing tenant
// is a normal answer here, not a 404.
func (h *TenantHandler) CheckTenant(c *gin.Context) {
	exists, err := h.service.Exists(h.RequestCtx(c), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TenantCheckResponse{Exists: exists})
}
