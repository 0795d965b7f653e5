package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitebuilder/internal/db"
	"github.com/sitebuilder/internal/publish"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeUploader struct {
	calls int
	err   error
}

func (u *fakeUploader) Upload(ctx context.Context, creds publish.Credentials, files []publish.File) (publish.Receipt, error) {
	u.calls++
	if u.err != nil {
		return publish.Receipt{}, u.err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return publish.Receipt{Files: names}, nil
}

func setupTestAPI(t *testing.T) (*API, *fakeUploader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	store, err := db.Open(dsn, db.DefaultWorkers, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	uploader := &fakeUploader{}
	return NewAPI(store, uploader, nil, t.TempDir(), "/api/uploads/"), uploader
}

func newJSONContext(method, target string, payload interface{}, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	var body []byte
	switch v := payload.(type) {
	case nil:
	case string:
		body = []byte(v)
	default:
		body, _ = json.Marshal(v)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func newUploadContext(t *testing.T, target, field, filename string, content []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write(content)
	} else if err := writer.WriteField("other", "value"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return payload
}

func saveProject(t *testing.T, api *API, id string) {
	t.Helper()

	c, w := newJSONContext(http.MethodPost, "/api/projects", map[string]interface{}{"id": id, "name": "Site", "blocks": []interface{}{}})
	api.SaveProject(c)
	if w.Code != http.StatusOK {
		t.Fatalf("save project: status %d body %s", w.Code, w.Body.String())
	}
}
