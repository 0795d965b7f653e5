package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// CreateStatusCheck 记录一次客户端心跳。
func (a *API) CreateStatusCheck(c *gin.Context) {
	var req statusCheckRequest
	if !bindJSON(c, &req) {
		return
	}

	check, err := a.status.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		respondServiceError(c, err, "create status check")
		return
	}
	c.JSON(http.StatusOK, check)
}

// ListStatusChecks 返回最近的心跳记录。
func (a *API) ListStatusChecks(c *gin.Context) {
	checks, err := a.status.List(c.Request.Context(), 0)
	if err != nil {
		respondServiceError(c, err, "list status checks")
		return
	}
	c.JSON(http.StatusOK, checks)
}
