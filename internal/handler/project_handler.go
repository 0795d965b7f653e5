package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebuilder/internal/service"
)

type projectRequest struct {
	ID     string          `json:"id" binding:"required"`
	Name   string          `json:"name" binding:"required"`
	Blocks json.RawMessage `json:"blocks"`
}

type sharedMenuRequest struct {
	SharedMenu json.RawMessage `json:"shared_menu" binding:"required"`
}

// ListProjects 返回全部项目，最近更新的在前。
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// SaveProject 按 id 创建或覆盖项目。
func (a *API) SaveProject(c *gin.Context) {
	var req projectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := a.projects.Save(c.Request.Context(), service.ProjectInput{
		ID:     req.ID,
		Name:   req.Name,
		Blocks: req.Blocks,
	})
	if err != nil {
		respondServiceError(c, err, "save project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetProject 返回单个项目。
func (a *API) GetProject(c *gin.Context) {
	project, err := a.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject 删除项目及其页面和设置。
func (a *API) DeleteProject(c *gin.Context) {
	if err := a.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "delete project")
		return
	}
	respondDeleted(c, "Project deleted successfully")
}

// UpdateSharedMenu 替换项目的共享导航。
func (a *API) UpdateSharedMenu(c *gin.Context) {
	var req sharedMenuRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.projects.UpdateSharedMenu(c.Request.Context(), c.Param("id"), req.SharedMenu); err != nil {
		respondServiceError(c, err, "update shared menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Shared menu updated successfully"})
}

// GetSharedMenu 返回项目的共享导航，未设置时为 null。
func (a *API) GetSharedMenu(c *gin.Context) {
	menu, err := a.projects.GetSharedMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get shared menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"shared_menu": menu})
}
