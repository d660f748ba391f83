package http

import "github.com/bartal/portfolio/internal/projects/service"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	service *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{service: svc}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
