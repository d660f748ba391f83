package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bartal/portfolio/internal/projects/domain"
)

// Source provides the current projects document.
type Source interface {
	Projects(ctx context.Context) ([]domain.Project, error)
}

// ProjectService handles project-related business logic. Writes are echoed
// back to the caller and never reach the source document.
type ProjectService struct {
	source Source
	newID  func() string
}

// NewProjectService creates a new project service
func NewProjectService(source Source) *ProjectService {
	return &ProjectService{
		source: source,
		newID:  func() string { return uuid.New().String() },
	}
}

// List returns every project in document order.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.source.Projects(ctx)
}

// Create echoes body with a freshly assigned id.
func (s *ProjectService) Create(_ context.Context, body map[string]any) (map[string]any, error) {
	if body == nil {
		return nil, domain.ErrInvalidBody
	}
	out := clone(body)
	out["id"] = s.newID()
	return out, nil
}

// Update echoes body with id taken from the path. A null body echoes just
// the id.
func (s *ProjectService) Update(_ context.Context, id string, body map[string]any) (map[string]any, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrNotFound
	}
	out := clone(body)
	out["id"] = id
	return out, nil
}

// Delete accepts any id and removes nothing.
func (s *ProjectService) Delete(_ context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrNotFound
	}
	return nil
}

func clone(in map[string]any) map[string]any {
	out := make(map[string]any, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
