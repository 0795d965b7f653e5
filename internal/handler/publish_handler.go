package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebuilder/internal/publish"
	"github.com/sitebuilder/internal/render"
)

type ftpUploadRequest struct {
	FTPConfig publish.Credentials `json:"ftpConfig"`
	Blocks    []render.Block      `json:"blocks" binding:"required,dive"`
}

// PublishFTP 渲染区块并通过 FTP 发布为 index.html。
func (a *API) PublishFTP(c *gin.Context) {
	var req ftpUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := a.publisher.Publish(c.Request.Context(), req.FTPConfig, req.Blocks)
	if err != nil {
		if errors.Is(err, publish.ErrInvalidCredentials) {
			respondError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "FTP upload failed: "+err.Error())
		return
	}

	message := "Website published successfully"
	if len(result.FilesUploaded) == 0 {
		message = "No changes to publish"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        message,
		"files_uploaded": result.FilesUploaded,
		"skipped":        result.Skipped,
	})
}
