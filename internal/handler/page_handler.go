package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebuilder/internal/render"
	"github.com/sitebuilder/internal/service"
)

type createPageRequest struct {
	ProjectID string          `json:"project_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Blocks    json.RawMessage `json:"blocks"`
	IsHome    bool            `json:"is_home"`
}

type updatePageRequest struct {
	Name   *string         `json:"name"`
	Blocks json.RawMessage `json:"blocks"`
	IsHome *bool           `json:"is_home"`
}

type duplicatePageRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// CreatePage 在项目末尾新建页面。
func (a *API) CreatePage(c *gin.Context) {
	var req createPageRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := a.pages.Create(c.Request.Context(), service.PageInput{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Blocks:    req.Blocks,
		IsHome:    req.IsHome,
	})
	if err != nil {
		respondServiceError(c, err, "create page")
		return
	}
	c.JSON(http.StatusCreated, page)
}

// ListPages 按顺序返回项目的页面。
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.List(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondServiceError(c, err, "list pages")
		return
	}
	c.JSON(http.StatusOK, pages)
}

// GetPage 返回单个页面。
func (a *API) GetPage(c *gin.Context) {
	page, err := a.pages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "get page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdatePage 局部更新页面。
func (a *API) UpdatePage(c *gin.Context) {
	var req updatePageRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := a.pages.Update(c.Request.Context(), c.Param("id"), service.PageUpdate{
		Name:   req.Name,
		Blocks: req.Blocks,
		IsHome: req.IsHome,
	})
	if err != nil {
		respondServiceError(c, err, "update page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// DeletePage 删除页面。
func (a *API) DeletePage(c *gin.Context) {
	if err := a.pages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "delete page")
		return
	}
	respondDeleted(c, "Page deleted successfully")
}

// DuplicatePage 复制页面。
func (a *API) DuplicatePage(c *gin.Context) {
	var req duplicatePageRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := a.pages.Duplicate(c.Request.Context(), c.Param("id"), req.NewName)
	if err != nil {
		respondServiceError(c, err, "duplicate page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// PreviewPage 将已保存的页面渲染为完整 HTML 文档。
func (a *API) PreviewPage(c *gin.Context) {
	page, err := a.pages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "preview page")
		return
	}

	blocks, err := render.DecodeBlocks(page.Blocks)
	if err != nil {
		respondServiceError(c, err, "preview page")
		return
	}
	document, err := a.renderer.Render(blocks)
	if err != nil {
		respondServiceError(c, err, "preview page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}
