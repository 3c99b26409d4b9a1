package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ltg-admin/internal/insight"
	"ltg-admin/internal/model"
	"ltg-admin/internal/service"
	"ltg-admin/internal/store"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// GET /api/tasks?search=&status=&priority=&department=&category=&sortBy=&sortOrder=
func (h *TaskHandler) List(c *gin.Context) {
	var q model.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	tasks := h.svc.List(c.Request.Context())
	filtered := insight.FilterTasks(tasks, q)
	insight.SortTasks(filtered, q.SortBy, q.SortOrder)
	c.JSON(http.StatusOK, gin.H{"tasks": filtered, "total": len(tasks), "filtered": len(filtered)})
}

// POST /api/tasks
//
// Accepts either a JSON body, or multipart form data with the task JSON in
// the "task" field and any number of attachments in "files".
func (h *TaskHandler) Create(c *gin.Context) {
	var t model.Task
	var files []service.FileUpload

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
			return
		}
		raw := form.Value["task"]
		if len(raw) == 0 || json.Unmarshal([]byte(raw[0]), &t) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload"})
			return
		}
		for _, fh := range form.File["files"] {
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable attachment"})
				return
			}
			defer f.Close()
			files = append(files, service.FileUpload{Filename: fh.Filename, Reader: f})
		}
	} else if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.Create(c.Request.Context(), &t, files); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, t)
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var t model.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t.ObjectID = c.Param("id")
	if err := h.svc.Update(c.Request.Context(), &t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if store.NotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/tasks/bulk
//
// Fans the action out per selected id and waits for all. Partial failures
// come back as 207 with the per-record report so the client keeps its
// selection and can retry.
func (h *TaskHandler) Bulk(c *gin.Context) {
	var req model.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Action == model.BulkSetStatus && req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}
	if req.Action == model.BulkReassign && req.AssignedTo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assignedTo required"})
		return
	}

	res, err := h.svc.Bulk(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !res.AllOK() {
		c.JSON(http.StatusMultiStatus, res)
		return
	}
	c.JSON(http.StatusOK, res)
}
