package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	companieshttp "github.com/bartal/portfolio/internal/companies/http"
	prefshttp "github.com/bartal/portfolio/internal/preferences/http"
	"github.com/bartal/portfolio/internal/preferences/repository"
	projectshttp "github.com/bartal/portfolio/internal/projects/http"
	"github.com/bartal/portfolio/internal/projects/service"
	"github.com/bartal/portfolio/internal/storage/filestore"
)

type APIDeps struct {
	Data        *filestore.Store
	Preferences repository.Store
	// Middleware runs on every /api route, after the engine-wide chain.
	Middleware []gin.HandlerFunc
}

func RegisterAPI(r *gin.Engine, dep APIDeps) {
	api := r.Group("/api", dep.Middleware...)

	projectsHandler := projectshttp.New(service.NewProjectService(dep.Data))
	projectsHandler.Register(api.Group("/projects"))

	companiesHandler := companieshttp.New(dep.Data)
	companiesHandler.Register(api.Group("/companies"))

	if dep.Preferences != nil {
		prefshttp.New(dep.Preferences).Register(api.Group("/preferences"))
	}

	// Preflights without an Origin header never reach the CORS handler.
	api.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}
