package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"innstay/internal/services"

	"github.com/gin-gonic/gin"
)

// MaxUploadMemory bounds the in-memory part of a multipart upload.
const MaxUploadMemory = 32 << 20

var uploadFields = []string{"images", "image", "files", "file"}

type ImageSaver interface {
	SaveImages(ctx context.Context, files []*multipart.FileHeader) (services.UploadResult, error)
}

type UploadHandler struct {
	Uploads ImageSaver
}

// POST /api/admin/uploads
func (h UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			respondError(c, http.StatusBadRequest, "invalid_body", "Expected multipart form data")
			return
		}
		respondError(c, http.StatusBadRequest, "invalid_body", "Invalid multipart form")
		return
	}

	var files []*multipart.FileHeader
	for _, field := range uploadFields {
		files = append(files, form.File[field]...)
	}

	res, err := h.Uploads.SaveImages(c.Request.Context(), files)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "count": len(res.URLs), "urls": res.URLs})
}
