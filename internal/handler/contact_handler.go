package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebuilder/internal/service"
)

type contactRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required"`
	Phone             string `json:"phone"`
	Message           string `json:"message" binding:"required"`
	NotificationEmail string `json:"notification_email"`
}

// SubmitContact 受理联系表单，邮件是否发出单独体现在 email_sent 中。
func (a *API) SubmitContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := a.contact.Submit(c.Request.Context(), service.ContactSubmission{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Message:           req.Message,
		NotificationEmail: req.NotificationEmail,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactNameMissing) ||
			errors.Is(err, service.ErrContactEmailMissing) ||
			errors.Is(err, service.ErrContactMessageMissing) {
			respondError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("contact form submission failed", "err", err)
		respondError(c, http.StatusInternalServerError, "Failed to submit form")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Form submitted successfully",
		"email_sent": result.EmailSent,
		"data": gin.H{
			"name":  req.Name,
			"email": req.Email,
		},
	})
}
