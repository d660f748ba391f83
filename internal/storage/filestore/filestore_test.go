package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectdomain "github.com/bartal/portfolio/internal/projects/domain"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestStore_ProjectsJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "projects.json", `[
		{"id":"1","title":"Shop","category":"web","featured":true,"detailImages":["/a.png","/b.png"],"headerColor":"emerald"},
		{"id":"2","title":"App","category":"mobile","featured":false}
	]`)

	store := New(Options{Dir: dir, ProjectsFile: "projects.json", CompaniesFile: "companies.json"})
	projects, err := store.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "Shop", projects[0].Title)
	assert.Equal(t, projectdomain.CategoryWeb, projects[0].Category)
	assert.Equal(t, []string{"/a.png", "/b.png"}, projects[0].DetailImages)
	assert.Equal(t, projectdomain.ColorEmerald, projects[0].HeaderColor)
	assert.False(t, projects[1].Featured)
}

func TestStore_RereadsOnEveryCall(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "companies.json", `[{"id":"a","name":"Acme","logoUrl":"/acme.svg"}]`)
	store := New(Options{Dir: dir, ProjectsFile: "projects.json", CompaniesFile: "companies.json"})

	first, err := store.Companies(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)

	writeFile(t, dir, "companies.json", `[]`)
	second, err := store.Companies(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, second)
	assert.Empty(t, second)
}

func TestStore_YAMLDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "companies.yaml", `
- id: a
  name: Acme
  logoUrl: /acme.svg
  website: https://acme.example
`)
	store := New(Options{Dir: dir, ProjectsFile: "projects.json", CompaniesFile: "companies.yaml"})

	companies, err := store.Companies(context.Background())
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, "https://acme.example", companies[0].Website)
	assert.Equal(t, "Acme logo", companies[0].Alt())
}

func TestStore_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "projects.json", `{"not":"an array"}`)
	writeFile(t, dir, "companies.toml", `x = 1`)

	store := New(Options{Dir: dir, ProjectsFile: "projects.json", CompaniesFile: "companies.toml"})

	_, err := store.Projects(context.Background())
	assert.Error(t, err)

	_, err = store.Companies(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	missing := New(Options{Dir: dir, ProjectsFile: "nope.json", CompaniesFile: "nope.json"})
	_, err = missing.Companies(context.Background())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := New(Options{Dir: t.TempDir(), ProjectsFile: "projects.json", CompaniesFile: "companies.json"})
	_, err := store.Projects(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "p.json"), resolve("data", "p.json"))
	assert.Equal(t, "/abs/p.json", resolve("data", "/abs/p.json"))
	assert.Equal(t, "p.json", resolve("", "p.json"))
}
