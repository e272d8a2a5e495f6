package admin

import (
	"errors"

	"github.com/subhe-sadik/shop-api/internal/http/response"
	"github.com/subhe-sadik/shop-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadFile stores an image and returns its public path. The optional
// "scene" form field picks the target folder.
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "missing file", err)
		return
	}

	path, err := h.UploadService.SaveFile(file, c.PostForm("scene"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, response.CodeBadRequest, "upload exceeds size limit", nil)
		case errors.Is(err, service.ErrUploadTypeNotAllowed):
			respondError(c, response.CodeBadRequest, "upload type not allowed", nil)
		default:
			respondError(c, response.CodeInternal, "failed to store upload", err)
		}
		return
	}

	response.Success(c, gin.H{"path": path})
}
