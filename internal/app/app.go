package app

import (
	"time"

	"github.com/kavia-common/user-notes-manager-222144-222154/internal/config"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type App struct {
	cfg    config.Config
	log    zerolog.Logger
	router *gin.Engine
}

func New(cfg config.Config, log zerolog.Logger) *App {
	a := &App{cfg: cfg, log: log}
	a.router = newRouter(cfg, log)
	return a
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func newRouter(cfg config.Config, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg)
	return r
}
