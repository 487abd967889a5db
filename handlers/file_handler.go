package handlers

import (
	"fmt"
	"net/http"

	"github.com/bucketlistprince/hpm-tech-solutions/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize caps a single attachment at 10MB
const maxUploadSize = 10 * 1024 * 1024

// FileHandler handles HTTP requests for project attachments
type FileHandler struct {
	responder
	files *service.FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(files *service.FileService, dev bool) *FileHandler {
	return &FileHandler{responder: responder{dev: dev}, files: files}
}

// List handles GET /api/projects/:id/files
func (h *FileHandler) List(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "Invalid project ID format", nil)
		return
	}

	files, err := h.files.List(c.Request.Context(), session, projectID)
	if err != nil {
		h.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, files)
}

// Upload handles POST /api/projects/:id/files
func (h *FileHandler) Upload(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "Invalid project ID format", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Error(c, http.StatusBadRequest, "No file provided", nil)
		return
	}

	if fileHeader.Size > maxUploadSize {
		h.Error(c, http.StatusBadRequest,
			fmt.Sprintf("File size exceeds maximum of %d bytes", maxUploadSize), nil)
		return
	}

	data, err := fileHeader.Open()
	if err != nil {
		h.Error(c, http.StatusInternalServerError, "Failed to read uploaded file", err.Error())
		return
	}
	defer data.Close()

	file, err := h.files.Upload(c.Request.Context(), session, projectID, service.UploadInput{
		Name:     fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Data:     data,
	})
	if err != nil {
		h.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// Download handles GET /api/files/:id
func (h *FileHandler) Download(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	fileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "Invalid file ID format", nil)
		return
	}

	file, reader, err := h.files.Download(c.Request.Context(), session, fileID)
	if err != nil {
		h.FromError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, reader, nil)
}
