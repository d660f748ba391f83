package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bartal/portfolio/config"
	"github.com/bartal/portfolio/internal/api/http/middleware"
	"github.com/bartal/portfolio/internal/api/http/routes"
	"github.com/bartal/portfolio/internal/bootstrap"
	"github.com/bartal/portfolio/internal/datacheck"
	"github.com/bartal/portfolio/internal/logging"
	"github.com/bartal/portfolio/internal/preferences/repository"
	"github.com/bartal/portfolio/internal/storage/filestore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.SetLevel(logging.ParseLevel(cfg.App.LogLevel))
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := filestore.New(filestore.Options{
		Dir:           cfg.Data.Dir,
		ProjectsFile:  cfg.Data.ProjectsFile,
		CompaniesFile: cfg.Data.CompaniesFile,
	})

	var prefs repository.Store = repository.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Printf("[warn] operation=open_redis message=falling back to in-memory preferences error=%v", err)
		} else {
			defer client.Close()
			prefs = repository.NewRedisStore(client, cfg.Redis.PreferencesTTL)
		}
	}

	checker := datacheck.NewChecker(store)
	var scheduler *datacheck.Scheduler
	if cfg.Data.CheckSchedule != "" {
		scheduler = datacheck.NewScheduler(checker, cfg.Data.CheckSchedule)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("datacheck: %v", err)
		}
	}

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		metrics = middleware.NewMetrics(cfg.App.ServiceName)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		Data:           store,
		DataStatus:     checker,
		Preferences:    prefs,
		CORSOrigins:    cfg.CORS.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		Metrics:        metrics,
		Frontend: routes.FrontendOptions{
			PublicDir:      cfg.Static.PublicDir,
			ClientBuildDir: cfg.Static.ClientBuildDir,
			DevClientURL:   cfg.Static.DevClientURL,
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[info] operation=listen service=%s env=%s addr=%s data=%s", cfg.App.ServiceName, cfg.App.Environment, srv.Addr, store.ProjectsPath())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[info] operation=shutdown message=signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[error] operation=shutdown error=%v", err)
	}
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}
}
