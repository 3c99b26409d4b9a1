package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ltg-admin/internal/service"
)

type NavigationHandler struct {
	nav    *service.NavigationService
	export *service.ExportService
}

func NewNavigationHandler(nav *service.NavigationService, export *service.ExportService) *NavigationHandler {
	return &NavigationHandler{nav: nav, export: export}
}

// GET /api/navigation/counts
func (h *NavigationHandler) Counts(c *gin.Context) {
	c.JSON(http.StatusOK, h.nav.Counts(c.Request.Context()))
}

// GET /api/navigation/visited
func (h *NavigationHandler) Visited(c *gin.Context) {
	c.JSON(http.StatusOK, h.nav.VisitedPages(c.Request.Context()))
}

// POST /api/navigation/visited  body: {"path":"/interns"}
func (h *NavigationHandler) MarkVisited(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.nav.MarkVisited(c.Request.Context(), req.Path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/navigation/visited
func (h *NavigationHandler) ClearVisited(c *gin.Context) {
	if err := h.nav.ClearVisited(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/export
func (h *NavigationHandler) Export(c *gin.Context) {
	f, err := h.export.Workbook(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("ltg-admin-export_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
