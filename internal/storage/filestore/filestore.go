package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	companydomain "github.com/bartal/portfolio/internal/companies/domain"
	projectdomain "github.com/bartal/portfolio/internal/projects/domain"
)

var (
	ErrDocumentNotFound  = errors.New("data document not found")
	ErrUnsupportedFormat = errors.New("unsupported data document format")
)

// Options locate the two documents. Relative file names resolve against Dir.
type Options struct {
	Dir           string
	ProjectsFile  string
	CompaniesFile string
}

// Store reads the static documents from disk on every call. There is no
// in-process cache, so edits to the files are visible on the next request.
type Store struct {
	projectsPath  string
	companiesPath string
}

func New(opt Options) *Store {
	return &Store{
		projectsPath:  resolve(opt.Dir, opt.ProjectsFile),
		companiesPath: resolve(opt.Dir, opt.CompaniesFile),
	}
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// ProjectsPath returns the resolved projects document path.
func (s *Store) ProjectsPath() string { return s.projectsPath }

// CompaniesPath returns the resolved companies document path.
func (s *Store) CompaniesPath() string { return s.companiesPath }

// Projects loads the projects document. A missing file is reported as
// ErrDocumentNotFound.
func (s *Store) Projects(ctx context.Context) ([]projectdomain.Project, error) {
	var out []projectdomain.Project
	if err := readDocument(ctx, s.projectsPath, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []projectdomain.Project{}
	}
	return out, nil
}

// Companies loads the companies document.
func (s *Store) Companies(ctx context.Context) ([]companydomain.Company, error) {
	var out []companydomain.Company
	if err := readDocument(ctx, s.companiesPath, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []companydomain.Company{}
	}
	return out, nil
}

func readDocument(ctx context.Context, path string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	return nil
}
