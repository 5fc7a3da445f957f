package api

import (
	"context"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	return ginCtx.Request.Context()
}
