package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartal/portfolio/internal/projects/domain"
	"github.com/bartal/portfolio/internal/projects/service"
	"github.com/bartal/portfolio/internal/storage/filestore"
)

func setupRouter(t *testing.T, projectsJSON string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if projectsJSON != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "projects.json"), []byte(projectsJSON), 0o600))
	}
	store := filestore.New(filestore.Options{Dir: dir, ProjectsFile: "projects.json", CompaniesFile: "companies.json"})

	router := gin.New()
	New(service.NewProjectService(store)).Register(router.Group("/api/projects"))
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListProjects(t *testing.T) {
	router := setupRouter(t, `[{"id":"1","title":"Shop","category":"web","featured":true}]`)

	rr := do(router, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Shop", got[0].Title)
}

func TestListProjects_EmptyDocumentIsArray(t *testing.T) {
	router := setupRouter(t, `[]`)

	rr := do(router, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListProjects_ReadFailure(t *testing.T) {
	router := setupRouter(t, "")

	rr := do(router, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to load projects data","message":"Unable to retrieve project information at this time"}`, rr.Body.String())
}

func TestCreateProject_EchoesWithID(t *testing.T) {
	router := setupRouter(t, `[]`)

	rr := do(router, http.MethodPost, "/api/projects", `{"title":"Draft","featured":false}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Draft", got["title"])
	assert.Equal(t, false, got["featured"])
	assert.NotEmpty(t, got["id"])

	list := do(router, http.MethodGet, "/api/projects", "")
	assert.JSONEq(t, `[]`, list.Body.String(), "nothing is persisted")
}

func TestCreateProject_InvalidBody(t *testing.T) {
	router := setupRouter(t, `[]`)

	for _, body := range []string{`not json`, `[1,2]`, `null`} {
		rr := do(router, http.MethodPost, "/api/projects", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestUpdateProject_EchoesPathID(t *testing.T) {
	router := setupRouter(t, `[]`)

	rr := do(router, http.MethodPut, "/api/projects/42", `{"id":"other","title":"Edited"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"42","title":"Edited"}`, rr.Body.String())
}

func TestUpdateProject_NullBodyEchoesID(t *testing.T) {
	router := setupRouter(t, `[]`)

	rr := do(router, http.MethodPut, "/api/projects/42", `null`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"42"}`, rr.Body.String())

	rr = do(router, http.MethodPut, "/api/projects/42", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListProjects_ServesKnownFieldsOnly(t *testing.T) {
	router := setupRouter(t, `[{"id":"1","title":"Shop","category":"web","draftNotes":"internal"}]`)

	rr := do(router, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title":"Shop"`)
	assert.NotContains(t, rr.Body.String(), "draftNotes")
}

func TestDeleteProject(t *testing.T) {
	router := setupRouter(t, `[]`)

	rr := do(router, http.MethodDelete, "/api/projects/42", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
