package http

import (
	"net/http"

	statService "anoa.com/usherhire/internal/modules/stat/service"
	"anoa.com/usherhire/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	statService statService.StatService
}

func NewStatHandler(statService statService.StatService) *StatHandler {
	return &StatHandler{
		statService: statService,
	}
}

func (h *StatHandler) GetDiagnostics(c *gin.Context) {
	diagnostics, err := h.statService.GetDiagnostics(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, diagnostics)
}
