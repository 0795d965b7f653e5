package handler

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitebuilder/internal/metrics"
	_ "golang.org/x/image/webp"
)

const (
	mediaImage = "image"
	mediaVideo = "video"
)

var allowedExtensions = map[string][]string{
	mediaImage: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	mediaVideo: {".mp4", ".webm", ".mov", ".avi", ".wmv"},
}

// UploadImage 处理图片上传请求
func (a *API) UploadImage(c *gin.Context) {
	a.upload(c, mediaImage)
}

// UploadVideo 处理视频上传请求
func (a *API) UploadVideo(c *gin.Context) {
	a.upload(c, mediaVideo)
}

func (a *API) upload(c *gin.Context, kind string) {
	file, err := c.FormFile("file")
	if err != nil {
		metrics.IncUpload(kind, "rejected")
		respondError(c, http.StatusUnprocessableEntity, "file is required")
		return
	}

	// 扩展名大小写不敏感，落盘统一为小写
	allowed := allowedExtensions[kind]
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(allowed, ext) {
		metrics.IncUpload(kind, "rejected")
		respondError(c, http.StatusBadRequest, "Invalid file type. Allowed: "+strings.Join(allowed, ", "))
		return
	}

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		metrics.IncUpload(kind, "error")
		respondError(c, http.StatusInternalServerError, "Upload failed: "+err.Error())
		return
	}

	// 随机文件名，避免覆盖和路径穿越
	filename := uuid.NewString() + ext
	path := filepath.Join(a.uploadDir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		slog.Error("failed to save upload", "kind", kind, "path", path, "err", err)
		metrics.IncUpload(kind, "error")
		respondError(c, http.StatusInternalServerError, "Upload failed: "+err.Error())
		return
	}

	resp := gin.H{
		"success":  true,
		"url":      a.uploadURL + "/" + filename,
		"filename": filename,
	}
	if kind == mediaImage {
		if width, height, ok := imageDimensions(path); ok {
			resp["width"] = width
			resp["height"] = height
		}
	}

	metrics.IncUpload(kind, "ok")
	c.JSON(http.StatusOK, resp)
}

func imageDimensions(path string) (int, int, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
