package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/sitebuilder/internal/mailer"
	"github.com/sitebuilder/internal/metrics"
)

var (
	ErrContactNameMissing    = errors.New("contact name is required")
	ErrContactEmailMissing   = errors.New("contact email is required")
	ErrContactMessageMissing = errors.New("contact message is required")
)

// ContactSubmission 是联系表单提交的内容。
type ContactSubmission struct {
	Name              string
	Email             string
	Phone             string
	Message           string
	NotificationEmail string
}

// ContactResult 报告表单受理情况和通知邮件是否发出。
type ContactResult struct {
	EmailSent bool
}

// MailSender 发送通知邮件。
type MailSender interface {
	Enabled() bool
	Send(ctx context.Context, msg mailer.Message) error
}

// ContactService 受理联系表单并按需转发通知邮件。
type ContactService struct {
	mail MailSender
}

// NewContactService 构造 ContactService，mail 为 nil 时从不发信。
func NewContactService(mail MailSender) *ContactService {
	return &ContactService{mail: mail}
}

var contactEmailTemplate = template.Must(template.New("contact").Parse(`<html>
  <body style="font-family: Arial, sans-serif; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1);">
      <h2 style="color: #4F46E5; margin-bottom: 20px;">New Contact Form Submission</h2>
      <div style="background-color: #F9FAFB; padding: 20px; border-radius: 8px; margin-bottom: 15px;">
        <p style="margin: 10px 0;"><strong style="color: #374151;">Name:</strong> {{.Name}}</p>
        <p style="margin: 10px 0;"><strong style="color: #374151;">Email:</strong> <a href="mailto:{{.Email}}" style="color: #4F46E5;">{{.Email}}</a></p>
        {{- if .Phone}}
        <p style="margin: 10px 0;"><strong style="color: #374151;">Phone:</strong> {{.Phone}}</p>
        {{- end}}
      </div>
      <div style="background-color: #F9FAFB; padding: 20px; border-radius: 8px;">
        <p style="margin: 0 0 10px 0;"><strong style="color: #374151;">Message:</strong></p>
        <p style="margin: 0; color: #6B7280; line-height: 1.6;">{{.Message}}</p>
      </div>
      <hr style="border: none; border-top: 1px solid #E5E7EB; margin: 20px 0;">
      <p style="color: #9CA3AF; font-size: 12px; text-align: center; margin: 0;">This message was sent from your website contact form</p>
    </div>
  </body>
</html>`))

// Submit 受理表单。邮件失败不会让提交失败，只体现在 EmailSent 上。
func (s *ContactService) Submit(ctx context.Context, form ContactSubmission) (ContactResult, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.NotificationEmail = strings.TrimSpace(form.NotificationEmail)

	switch {
	case form.Name == "":
		return ContactResult{}, ErrContactNameMissing
	case form.Email == "":
		return ContactResult{}, ErrContactEmailMissing
	case strings.TrimSpace(form.Message) == "":
		return ContactResult{}, ErrContactMessageMissing
	}

	slog.Info("contact form submitted", "name", form.Name, "email", form.Email)

	if form.NotificationEmail == "" {
		metrics.IncContact("skipped")
		return ContactResult{}, nil
	}

	sent := s.notify(ctx, form)
	return ContactResult{EmailSent: sent}, nil
}

func (s *ContactService) notify(ctx context.Context, form ContactSubmission) bool {
	if s.mail == nil || !s.mail.Enabled() {
		slog.Warn("smtp credentials not configured, email notification skipped")
		metrics.IncContact("skipped")
		return false
	}

	body, err := renderContactEmail(form)
	if err != nil {
		slog.Error("failed to render contact email", "err", err)
		metrics.IncContact("failed")
		return false
	}

	err = s.mail.Send(ctx, mailer.Message{
		To:       form.NotificationEmail,
		Subject:  "New Contact Form Submission from " + form.Name,
		HTMLBody: body,
	})
	if err != nil {
		slog.Error("failed to send email", "to", form.NotificationEmail, "err", err)
		metrics.IncContact("failed")
		return false
	}

	slog.Info("email sent", "to", form.NotificationEmail)
	metrics.IncContact("sent")
	return true
}

func renderContactEmail(form ContactSubmission) (string, error) {
	var buf bytes.Buffer
	if err := contactEmailTemplate.Execute(&buf, form); err != nil {
		return "", fmt.Errorf("render contact email: %w", err)
	}
	return buf.String(), nil
}
