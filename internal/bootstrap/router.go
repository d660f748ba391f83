package bootstrap

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/bartal/portfolio/internal/api/http"
	"github.com/bartal/portfolio/internal/api/http/middleware"
	"github.com/bartal/portfolio/internal/api/http/routes"
	"github.com/bartal/portfolio/internal/datacheck"
	"github.com/bartal/portfolio/internal/preferences/repository"
	"github.com/bartal/portfolio/internal/storage/filestore"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	Data        *filestore.Store
	DataStatus  *datacheck.Checker
	Preferences repository.Store

	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	// Metrics is nil when the /metrics endpoint is disabled.
	Metrics *middleware.Metrics

	Frontend routes.FrontendOptions
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeaders())
	if dep.Metrics != nil {
		r.Use(dep.Metrics.Middleware())
	}
	r.Use(middleware.CORS(dep.CORSOrigins))

	var status httpapi.DataStatus
	if dep.DataStatus != nil {
		status = dep.DataStatus
	}
	var prefs httpapi.Pinger
	if dep.Preferences != nil {
		prefs = dep.Preferences
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, status, prefs)
	healthHandler.RegisterRoutes(r)

	if dep.Metrics != nil {
		r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))
	}

	var apiMW []gin.HandlerFunc
	if dep.RateLimitRPS > 0 {
		apiMW = append(apiMW, middleware.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst).Middleware())
	}
	routes.RegisterAPI(r, routes.APIDeps{
		Data:        dep.Data,
		Preferences: dep.Preferences,
		Middleware:  apiMW,
	})

	routes.RegisterFrontend(r, dep.Frontend)

	return r
}
