package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebuilder/internal/publish"
	"github.com/sitebuilder/internal/service"
)

var validationErrors = []error{
	service.ErrClientNameMissing,
	service.ErrProjectIDMissing,
	service.ErrProjectNameMissing,
	service.ErrPageNameMissing,
	service.ErrPageProjectMissing,
	service.ErrBlocksInvalid,
	service.ErrMenuInvalid,
	service.ErrContactNameMissing,
	service.ErrContactEmailMissing,
	service.ErrContactMessageMissing,
	publish.ErrInvalidCredentials,
}

var notFoundErrors = []error{
	service.ErrProjectNotFound,
	service.ErrPageNotFound,
	service.ErrSettingsNotFound,
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// bindJSON 解析请求体，结构或必填字段不合法时返回 422。
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// respondServiceError 将业务错误映射为状态码，未识别的错误按 500 返回并附带描述。
func respondServiceError(c *gin.Context, err error, action string) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			respondError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	slog.Error(action+" failed", "path", c.FullPath(), "err", err)
	respondError(c, http.StatusInternalServerError, err.Error())
}

func respondDeleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
