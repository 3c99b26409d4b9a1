package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ltg-admin/internal/service"
	"ltg-admin/internal/store"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
	notify    *service.NotificationService
	logs      *service.SystemLogService
}

func NewDashboardHandler(dashboard *service.DashboardService, notify *service.NotificationService, logs *service.SystemLogService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, notify: notify, logs: logs}
}

// GET /api/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Cached(c.Request.Context()))
}

// GET /api/notifications?limit=50
func (h *DashboardHandler) Notifications(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.notify.List(c.Request.Context(), limit))
}

// POST /api/notifications/:id/read
func (h *DashboardHandler) MarkRead(c *gin.Context) {
	if err := h.notify.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		if store.NotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/notifications/read-all
func (h *DashboardHandler) MarkAllRead(c *gin.Context) {
	if err := h.notify.MarkAllRead(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/logs?limit=50
func (h *DashboardHandler) Logs(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.logs.List(c.Request.Context(), limit))
}
