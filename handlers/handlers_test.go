package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bucketlistprince/hpm-tech-solutions/models"
	"github.com/bucketlistprince/hpm-tech-solutions/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memUserStore struct {
	users []*models.User
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	user.ID = uuid.New()
	m.users = append(m.users, user)
	return nil
}

func (m *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

type memProjectStore struct {
	projects []*models.Project
	clock    time.Time
}

func (m *memProjectStore) Create(_ context.Context, project *models.Project) error {
	if m.clock.IsZero() {
		m.clock = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	m.clock = m.clock.Add(time.Second)
	project.ID = uuid.New()
	project.CreatedAt = m.clock
	project.UpdatedAt = m.clock
	m.projects = append(m.projects, project)
	return nil
}

func (m *memProjectStore) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memProjectStore) ListByClientID(_ context.Context, clientID uuid.UUID) ([]*models.Project, error) {
	var out []*models.Project
	for i := len(m.projects) - 1; i >= 0; i-- {
		if m.projects[i].ClientID == clientID {
			out = append(out, m.projects[i])
		}
	}
	return out, nil
}

type memFileStore struct {
	files []*models.File
}

func (m *memFileStore) Create(_ context.Context, file *models.File) error {
	file.ID = uuid.New()
	file.CreatedAt = time.Now()
	file.UpdatedAt = file.CreatedAt
	m.files = append(m.files, file)
	return nil
}

func (m *memFileStore) GetByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	for _, f := range m.files {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memFileStore) ListByProjectID(_ context.Context, projectID uuid.UUID) ([]*models.File, error) {
	var out []*models.File
	for i := len(m.files) - 1; i >= 0; i-- {
		if m.files[i].ProjectID == projectID {
			out = append(out, m.files[i])
		}
	}
	return out, nil
}

type memBlobStorage struct {
	objects map[string][]byte
}

func (m *memBlobStorage) Upload(_ context.Context, key, _ string, data io.Reader) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.objects[key] = b
	return nil
}

func (m *memBlobStorage) Download(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := m.objects[key]
	if !ok {
		return nil, models.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memBlobStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	users    *memUserStore
	projects *memProjectStore
	files    *memFileStore
	blobs    *memBlobStorage
}

// newTestEnv wires the handlers onto in-memory stores with the same route
// table as the server binary.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:    &memUserStore{},
		projects: &memProjectStore{},
		files:    &memFileStore{},
		blobs:    &memBlobStorage{objects: map[string][]byte{}},
	}

	authService := service.NewAuthService(
		service.WithUserStore(env.users),
		service.WithJWTSecret("handler-test-secret"),
	)
	projectService := service.NewProjectService(
		service.WithProjectStore(env.projects),
		service.WithProjectUserStore(env.users),
	)
	fileService := service.NewFileService(
		service.WithFileStore(env.files),
		service.WithFileProjectStore(env.projects),
		service.WithBlobStorage(env.blobs),
	)

	authHandler := NewAuthHandler(authService, false)
	projectHandler := NewProjectHandler(projectService, false)
	fileHandler := NewFileHandler(fileService, false)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/logout", authHandler.Logout)

	authed := api.Group("")
	authed.Use(RequireSession(authService))
	authed.GET("/auth/verify", authHandler.Verify)
	authed.POST("/projects", projectHandler.Create)
	authed.GET("/projects", projectHandler.List)
	authed.GET("/projects/:id", projectHandler.Get)
	authed.GET("/projects/:id/files", fileHandler.List)
	authed.POST("/projects/:id/files", fileHandler.Upload)
	authed.GET("/files/:id", fileHandler.Download)

	env.router = router
	return env
}

func (e *testEnv) do(t *testing.T, method, path, cookie string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register registers and logs in a user, returning the session token from the
// login cookie.
func (e *testEnv) register(t *testing.T, name, email, password string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	return e.login(t, email, password)
}

// login logs in and returns the session token from the response cookie.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			require.NotEmpty(t, c.Value)
			require.True(t, c.HttpOnly)
			return c.Value
		}
	}
	t.Fatal("login response did not set the session cookie")
	return ""
}

func newBearerRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func validProjectBody() gin.H {
	return gin.H{
		"title":       "Corporate site redesign",
		"description": "Refresh the public website",
		"type":        "WEBSITE",
		"companyName": "Acme",
		"clientName":  "Jane Doe",
		"clientEmail": "jane@acme.com",
		"clientPhone": "555-0100",
		"budget":      5000,
		"websiteType": "CORPORATE",
	}
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}
