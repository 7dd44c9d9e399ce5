package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BIUSYZ/mycooook/internal/service"
)

// maxUploadSize caps single image uploads at 10 MiB.
const maxUploadSize = 10 << 20

type UploadHandler struct {
	store  service.BlobStore
	logger *zap.Logger
}

func NewUploadHandler(store service.BlobStore, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{store: store, logger: logger}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	url, err := h.store.Save(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
