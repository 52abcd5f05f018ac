package handler

import (
	"fieldtofork/internal/infrastructure/storage"
	"fieldtofork/pkg/errors"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

const maxImageSize = 10 << 20 // 10 MB

type FileHandler struct {
	storageClient *storage.CloudinaryClient
}

func NewFileHandler(storageClient *storage.CloudinaryClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

func (h *FileHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}

	if fileHeader.Size > maxImageSize {
		return response.Error(c, errors.BadRequest("File exceeds the 10MB limit", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	result, err := h.storageClient.UploadImage(c.Request().Context(), src)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}
