package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"agenda_backend/internal/logger"
	"agenda_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	storage storage.Storage
}

func NewFileHandler(store storage.Storage) *FileHandler {
	return &FileHandler{
		storage: store,
	}
}

// Serve streams a stored file. Paths look like
// profiles/<uuid>/<filename> or events/<uuid>/<filename>.
func (h *FileHandler) Serve(c *gin.Context) {
	ctx := c.Request.Context()

	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		c.Status(http.StatusNotFound)
		return
	}

	reader, err := h.storage.Get(ctx, path)
	if err != nil {
		logger.CtxWarn(ctx, "File not found", "path", path)
		c.Status(http.StatusNotFound)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.CtxWithError(ctx, "Failed to stream file", err, "path", path)
	}
}
