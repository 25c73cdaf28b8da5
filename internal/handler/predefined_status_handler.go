package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"status-service/internal/service"
)

// PredefinedStatusHandler serves the fixed status template catalog
type PredefinedStatusHandler struct {
	predefinedService *service.PredefinedStatusService
}

// NewPredefinedStatusHandler creates a new PredefinedStatusHandler
func NewPredefinedStatusHandler(predefinedService *service.PredefinedStatusService) *PredefinedStatusHandler {
	return &PredefinedStatusHandler{predefinedService: predefinedService}
}

// ListPredefinedStatuses godoc
// @Summary      List the predefined status templates
// @Tags         predefined
// @Produce      json
// @Success      200 {array} model.PredefinedStatus
// @Router       /predefined_statuses [get]
func (h *PredefinedStatusHandler) ListPredefinedStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.predefinedService.ListAll(clientLang(c)))
}
