package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sitebuilder/internal/db"
	"github.com/sitebuilder/internal/render"
	"github.com/sitebuilder/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	status    *service.StatusService
	projects  *service.ProjectService
	pages     *service.PageService
	settings  *service.SettingsService
	publisher *service.PublishService
	contact   *service.ContactService
	renderer  *render.Renderer
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services.
// uploader pushes published sites; mail delivers contact notifications and may be nil.
func NewAPI(store *db.Store, uploader service.Uploader, mail service.MailSender, uploadDir, uploadURL string) *API {
	renderer := render.New()

	return &API{
		status:    service.NewStatusService(store),
		projects:  service.NewProjectService(store),
		pages:     service.NewPageService(store),
		settings:  service.NewSettingsService(store),
		publisher: service.NewPublishService(store, renderer, uploader),
		contact:   service.NewContactService(mail),
		renderer:  renderer,
		uploadDir: uploadDir,
		uploadURL: strings.TrimRight(uploadURL, "/"),
	}
}

// Hello 是 API 根路径的存活探针。
func (a *API) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}
