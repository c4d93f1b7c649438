package handlers

import (
	"net/http"
	"time"

	"turnos-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles reminder runs and per-user reminder settings
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// Run handles POST /notifications/run
// @Summary Run the reminder pass
// @Description Evaluates upcoming shifts and sends any due reminders. Meant to be
// @Description invoked by an external scheduler; authenticated by the scheduler token.
// @Tags notifications
// @Produce json
// @Param now query string false "Override the evaluation instant (RFC3339)"
// @Success 200 {object} service.RunSummary "Counts for the pass"
// @Failure 401 {object} ErrorResponse "Missing or invalid scheduler token"
// @Security SchedulerToken
// @Router /notifications/run [post]
func (h *NotificationHandler) Run(c *gin.Context) {
	now := time.Now()
	if raw := c.Query("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid now, expected RFC3339"})
			return
		}
		now = parsed
	}

	summary, err := h.notificationService.Run(c.Request.Context(), now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetConfig handles GET /notifications/config
// @Summary Get the caller's reminder settings
// @Description Returns the stored toggles, or the all-enabled defaults when none exist
// @Tags notifications
// @Produce json
// @Success 200 {object} models.NotificationConfig "Reminder settings"
// @Security BearerAuth
// @Router /notifications/config [get]
func (h *NotificationHandler) GetConfig(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	config, err := h.notificationService.GetConfig(p.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// UpdateConfig handles PUT /notifications/config
// @Summary Update the caller's reminder settings
// @Tags notifications
// @Accept json
// @Produce json
// @Param config body service.UpdateConfigRequest true "Reminder toggles"
// @Success 200 {object} models.NotificationConfig "Stored settings"
// @Security BearerAuth
// @Router /notifications/config [put]
func (h *NotificationHandler) UpdateConfig(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req service.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	config, err := h.notificationService.UpdateConfig(p.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}
