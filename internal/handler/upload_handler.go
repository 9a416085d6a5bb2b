package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
)

// 允许的上传类目
var allowedUploadCategories = map[string]bool{
	"products": true,
	"payments": true,
}

// UploadHandler 文件上传处理器
type UploadHandler struct {
	svc *service.UploadService
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload 上传文件
// POST /api/v1/uploads/:category
func (h *UploadHandler) Upload(c *gin.Context) {
	category := c.Param("category")
	if !allowedUploadCategories[category] {
		BadRequest(c, "unknown upload category: "+category)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "open uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	result, err := h.svc.Upload(c.Request.Context(), category, fileHeader.Filename,
		file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Created(c, result)
}
