package handler

import (
	"net/http"
	"strings"

	"github.com/Ebad-S/Movie-Streaming-API/internal/utils"
	"github.com/gin-gonic/gin"
)

// GetPoster 获取海报图片，本地文件优先，缺失时透传上游
func (h *Handler) GetPoster(c *gin.Context) {
	imdbID := c.Param("id")

	data, err := h.Posters.Get(c.Request.Context(), imdbID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.JPEG(c, data)
}

// UploadPoster 上传海报图片，覆盖同名文件
func (h *Handler) UploadPoster(c *gin.Context) {
	imdbID := c.Param("id")

	contentType := c.GetHeader("Content-Type")
	if !uploadTypeSupported(contentType) {
		utils.Error(c, http.StatusBadRequest, "Only JPG images are supported")
		return
	}

	// 完整读取请求体后再解析，不做流式处理
	body, err := c.GetRawData()
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Could not read request body")
		return
	}

	data := body
	if strings.HasPrefix(contentType, "multipart/form-data") {
		data, err = utils.ExtractImageFile(body, contentType)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := h.Posters.Put(c.Request.Context(), imdbID, data); err != nil {
		h.respondError(c, err)
		return
	}

	utils.JSON(c, gin.H{"message": "Poster uploaded successfully", "imdbID": imdbID})
}

// uploadTypeSupported 上传只接受 multipart 表单或图片类型的请求体
func uploadTypeSupported(contentType string) bool {
	return strings.HasPrefix(contentType, "multipart/form-data") ||
		strings.HasPrefix(contentType, "image/")
}
