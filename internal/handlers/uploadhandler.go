package handlers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	Files  FileStore
	Logger *log.Logger
}

func NewUploadHandler(files FileStore, logger *log.Logger) *UploadHandler {
	return &UploadHandler{Files: files, Logger: logger}
}

// ServeUpload is GET /api/uploads/:filename
func (h *UploadHandler) ServeUpload(c *gin.Context) {
	name := c.Param("filename")
	path, err := h.Files.Path(name)
	if err != nil {
		h.Logger.Printf("ServeUpload: rejected name %q: %v", name, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		if err != nil && !os.IsNotExist(err) {
			h.Logger.Printf("ServeUpload: stat %s: %v", name, err)
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.File(path)
}
