package handler

import (
	"github.com/fitadmin/backend/internal/application/media"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles the upload broker endpoints. No file bytes pass
// through this API; clients upload directly against the minted
// credentials.
type UploadHandler struct {
	BaseHandler
	uploadService *media.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *media.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RegisterRoutes registers upload broker routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	upload := rg.Group("/upload")
	{
		upload.POST("/image", h.CreateImageUpload)
		upload.POST("/video", h.CreateVideoUpload)
		upload.GET("/video/:uid", h.VideoStatus)
	}
}

// ImageUploadRequest represents a request for an image upload credential
type ImageUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
	Folder      string `json:"folder" binding:"required"`
}

// CreateImageUpload mints a presigned PUT URL for a new object under the
// requested folder
func (h *UploadHandler) CreateImageUpload(c *gin.Context) {
	var req ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	credential, err := h.uploadService.CreateImageUpload(c.Request.Context(), req.ContentType, req.Folder)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, credential)
}

// CreateVideoUpload requests a one-time direct-upload URL from the
// streaming service
func (h *UploadHandler) CreateVideoUpload(c *gin.Context) {
	upload, err := h.uploadService.CreateVideoUpload(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, upload)
}

// VideoStatus reports playback URLs and transcoding readiness for an
// uploaded video
func (h *UploadHandler) VideoStatus(c *gin.Context) {
	status, err := h.uploadService.VideoStatus(c.Request.Context(), c.Param("uid"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, status)
}
