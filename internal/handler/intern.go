package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ltg-admin/internal/insight"
	"ltg-admin/internal/model"
	"ltg-admin/internal/service"
	"ltg-admin/internal/store"
)

type InternHandler struct {
	svc *service.InternService
}

func NewInternHandler(svc *service.InternService) *InternHandler {
	return &InternHandler{svc: svc}
}

// GET /api/interns?search=&status=&department=&sortBy=&sortOrder=
func (h *InternHandler) List(c *gin.Context) {
	var q model.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	interns := h.svc.List(c.Request.Context())
	filtered := insight.FilterInterns(interns, q)
	insight.SortInterns(filtered, q.SortBy, q.SortOrder)
	c.JSON(http.StatusOK, gin.H{"interns": filtered, "total": len(interns), "filtered": len(filtered)})
}

// POST /api/interns
func (h *InternHandler) Create(c *gin.Context) {
	var in model.Intern
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.Create(c.Request.Context(), &in); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, in)
}

// PUT /api/interns/:id
func (h *InternHandler) Update(c *gin.Context) {
	var in model.Intern
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	in.ObjectID = c.Param("id")
	if err := h.svc.Update(c.Request.Context(), &in); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, in)
}

// DELETE /api/interns/:id
func (h *InternHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if store.NotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "intern not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
