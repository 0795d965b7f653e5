package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebuilder/internal/service"
)

// GetSettings 返回项目设置，尚未保存过时返回默认值。
func (a *API) GetSettings(c *gin.Context) {
	projectID := c.Param("id")

	settings, err := a.settings.Get(c.Request.Context(), projectID)
	if errors.Is(err, service.ErrSettingsNotFound) {
		c.JSON(http.StatusOK, a.settings.Defaults(projectID))
		return
	}
	if err != nil {
		respondServiceError(c, err, "get settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings 合并写入项目设置，只修改请求中出现的字段。
func (a *API) SaveSettings(c *gin.Context) {
	var input service.SettingsInput
	if !bindJSON(c, &input) {
		return
	}

	settings, err := a.settings.Save(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err, "save settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
