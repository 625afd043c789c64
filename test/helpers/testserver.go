package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"carelink_backend/database"
	"carelink_backend/internal/app"
	"carelink_backend/internal/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestServer wraps an httptest server backed by an in-memory sqlite
// database and a temp-dir local storage backend.
type TestServer struct {
	Server     *httptest.Server
	DB         *gorm.DB
	storageDir string
}

// FilePart is one file attachment for a multipart submission.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// NewTestServer builds the full application against sqlite and local
// storage. No external services are needed.
func NewTestServer(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	// The server may outlive the test that created it, so the storage
	// dir is managed here rather than with t.TempDir.
	storageDir, err := os.MkdirTemp("", "carelink-test-storage-*")
	if err != nil {
		t.Fatalf("failed to create storage dir: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = storageDir
	cfg.Storage.BaseURL = "http://localhost:5003/uploads"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "application/pdf"}
	cfg.JWT.Secret = "test-secret-do-not-use-in-production"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:     server,
		DB:         db,
		storageDir: storageDir,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
	os.RemoveAll(ts.storageDir)
}

// ClearTables empties all tables between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	for _, table := range []string{"suppliers", "users"} {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clear table %s: %v", table, err)
		}
	}
}

// SendRequest issues a JSON request against the test server.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendMultipart issues a multipart submission: the JSON payload in the
// "data" part plus the given file parts.
func (ts *TestServer) SendMultipart(t *testing.T, path string, data interface{}, files []FilePart) (*http.Response, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	jsonData, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("failed to encode data part: %v", err)
	}
	if err := writer.WriteField("data", string(jsonData)); err != nil {
		t.Fatalf("failed to write data part: %v", err)
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+f.FieldName+`"; filename="`+f.FileName+`"`)
		header.Set("Content-Type", f.ContentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create file part %s: %v", f.FieldName, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("failed to write file part %s: %v", f.FieldName, err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to finalize multipart body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}
