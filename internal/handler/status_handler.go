package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"status-service/internal/middleware"
	"status-service/internal/service"
)

// StatusHandler handles user status HTTP requests
type StatusHandler struct {
	statusService     *service.StatusService
	predefinedService *service.PredefinedStatusService
	logger            *zap.Logger
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(
	statusService *service.StatusService,
	predefinedService *service.PredefinedStatusService,
	logger *zap.Logger,
) *StatusHandler {
	return &StatusHandler{
		statusService:     statusService,
		predefinedService: predefinedService,
		logger:            logger,
	}
}

type SetStatusRequest struct {
	StatusType string `json:"statusType" binding:"required"`
}

type SetPredefinedMessageRequest struct {
	MessageID string `json:"messageId" binding:"required"`
	ClearAt   *int64 `json:"clearAt"`
}

type SetCustomMessageRequest struct {
	StatusIcon *string `json:"statusIcon"`
	Message    string  `json:"message"`
	ClearAt    *int64  `json:"clearAt"`
}

type HeartbeatRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkStatusesRequest struct {
	UserIDs []string `json:"userIds" binding:"required,min=1"`
}

// GetOwnStatus godoc
// @Summary      Get the caller's own status
// @Tags         status
// @Produce      json
// @Success      200 {object} PrivateStatusResponse
// @Failure      404 {object} ErrorResponse
// @Router       /user_status [get]
// @Security     BearerAuth
func (h *StatusHandler) GetOwnStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	status, err := h.statusService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToPrivateStatusResponse(status, h.predefinedService, clientLang(c)))
}

// SetStatus godoc
// @Summary      Set the caller's presence status
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        request body SetStatusRequest true "Presence status"
// @Success      200 {object} PrivateStatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /user_status/status [put]
// @Security     BearerAuth
func (h *StatusHandler) SetStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}

	status, err := h.statusService.SetStatus(c.Request.Context(), userID, req.StatusType, nil, true)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.logger.Info("presence status set",
		zap.String("userId", userID),
		zap.String("status", req.StatusType))
	middleware.RecordStatusUpdate(req.StatusType)

	c.JSON(http.StatusOK, ToPrivateStatusResponse(status, h.predefinedService, clientLang(c)))
}

// SetPredefinedMessage godoc
// @Summary      Select a predefined status message
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        request body SetPredefinedMessageRequest true "Template selection"
// @Success      200 {object} PrivateStatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /user_status/message/predefined [put]
// @Security     BearerAuth
func (h *StatusHandler) SetPredefinedMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	var req SetPredefinedMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}

	status, err := h.statusService.SetPredefinedMessage(c.Request.Context(), userID, req.MessageID, req.ClearAt)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	middleware.RecordMessageSet("predefined")

	c.JSON(http.StatusOK, ToPrivateStatusResponse(status, h.predefinedService, clientLang(c)))
}

// SetCustomMessage godoc
// @Summary      Set a custom status message
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        request body SetCustomMessageRequest true "Custom message"
// @Success      200 {object} PrivateStatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /user_status/message/custom [put]
// @Security     BearerAuth
func (h *StatusHandler) SetCustomMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	var req SetCustomMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}

	status, err := h.statusService.SetCustomMessage(c.Request.Context(), userID, req.StatusIcon, req.Message, req.ClearAt)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	middleware.RecordMessageSet("custom")

	c.JSON(http.StatusOK, ToPrivateStatusResponse(status, h.predefinedService, clientLang(c)))
}

// ClearMessage godoc
// @Summary      Clear the caller's status message
// @Tags         status
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /user_status/message [delete]
// @Security     BearerAuth
func (h *StatusHandler) ClearMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	cleared, err := h.statusService.ClearMessage(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if cleared {
		middleware.RecordMessageCleared()
	}

	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}

// ClearStatus godoc
// @Summary      Reset the caller's presence to offline
// @Tags         status
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /user_status/status [delete]
// @Security     BearerAuth
func (h *StatusHandler) ClearStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	cleared, err := h.statusService.ClearStatus(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}

// DeleteStatus godoc
// @Summary      Delete the caller's status record
// @Tags         status
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /user_status [delete]
// @Security     BearerAuth
func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	deleted, err := h.statusService.Remove(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Heartbeat godoc
// @Summary      Refresh automatic presence for an active client
// @Tags         status
// @Accept       json
// @Produce      json
// @Param        request body HeartbeatRequest true "Heartbeat status (online or idle)"
// @Success      200 {object} PrivateStatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /heartbeat [put]
// @Security     BearerAuth
func (h *StatusHandler) Heartbeat(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "UNAUTHORIZED", Message: "User not authenticated"},
		})
		return
	}

	var req HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}

	status, err := h.statusService.Heartbeat(c.Request.Context(), userID, req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToPrivateStatusResponse(status, h.predefinedService, clientLang(c)))
}

// GetUserStatus godoc
// @Summary      Get another user's status
// @Tags         statuses
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} PublicStatusResponse
// @Failure      404 {object} ErrorResponse
// @Router       /statuses/{userId} [get]
// @Security     BearerAuth
func (h *StatusHandler) GetUserStatus(c *gin.Context) {
	status, err := h.statusService.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToPublicStatusResponse(status, h.predefinedService, clientLang(c)))
}

// ListStatuses godoc
// @Summary      List user statuses
// @Tags         statuses
// @Produce      json
// @Param        limit  query int false "Maximum number of results"
// @Param        offset query int false "Result offset"
// @Success      200 {array} PublicStatusResponse
// @Router       /statuses [get]
// @Security     BearerAuth
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	var limit, offset *int
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = &n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = &n
		}
	}

	statuses, err := h.statusService.FindAll(c.Request.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list statuses", zap.Error(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToPublicStatusResponses(statuses, h.predefinedService, clientLang(c)))
}

// BulkStatuses godoc
// @Summary      Get statuses for a set of users
// @Tags         statuses
// @Accept       json
// @Produce      json
// @Param        request body BulkStatusesRequest true "User IDs"
// @Success      200 {array} PublicStatusResponse
// @Failure      400 {object} ErrorResponse
// @Router       /statuses/bulk [post]
// @Security     BearerAuth
func (h *StatusHandler) BulkStatuses(c *gin.Context) {
	var req BulkStatusesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "VALIDATION_ERROR", Message: err.Error()},
		})
		return
	}

	statuses, err := h.statusService.FindByUserIDs(c.Request.Context(), req.UserIDs)
	if err != nil {
		h.logger.Error("failed to fetch bulk statuses", zap.Error(err))
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ToPublicStatusResponses(statuses, h.predefinedService, clientLang(c)))
}
