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

type CertificateHandler struct {
	svc *service.CertificateService
}

func NewCertificateHandler(svc *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{svc: svc}
}

// GET /api/certificates?search=&status=&priority=&department=&category=&sortBy=&sortOrder=
func (h *CertificateHandler) List(c *gin.Context) {
	var q model.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	certs := h.svc.List(c.Request.Context())
	filtered := insight.FilterCertificates(certs, q)
	insight.SortCertificates(filtered, q.SortBy, q.SortOrder)
	c.JSON(http.StatusOK, gin.H{"certificates": filtered, "total": len(certs), "filtered": len(filtered)})
}

// POST /api/certificates
//
// Accepts either a JSON body, or multipart form data with the certificate
// JSON in the "certificate" field and the document in "document".
func (h *CertificateHandler) Create(c *gin.Context) {
	var cert model.Certificate
	var document *service.FileUpload

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
			return
		}
		raw := form.Value["certificate"]
		if len(raw) == 0 || json.Unmarshal([]byte(raw[0]), &cert) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid certificate payload"})
			return
		}
		if fhs := form.File["document"]; len(fhs) > 0 {
			f, err := fhs[0].Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable document"})
				return
			}
			defer f.Close()
			document = &service.FileUpload{Filename: fhs[0].Filename, Reader: f}
		}
	} else if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.svc.Create(c.Request.Context(), &cert, document); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cert)
}

// PUT /api/certificates/:id
func (h *CertificateHandler) Update(c *gin.Context) {
	var cert model.Certificate
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	cert.ObjectID = c.Param("id")
	if err := h.svc.Update(c.Request.Context(), &cert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cert)
}

// DELETE /api/certificates/:id
func (h *CertificateHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if store.NotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
