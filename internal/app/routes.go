package app

import (
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/config"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/dto"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/handlers"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/metrics"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/repo"
	"github.com/kavia-common/user-notes-manager-222144-222154/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. The note store lives here:
// one instance per process, owned by the composition root and handed down
// through the service and handler.
func Setup(r *gin.Engine, cfg config.Config) {
	r.GET("/", rootHandler())
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	noteRepo := repo.NewMemoryNoteRepo()
	noteSvc := service.NewNoteService(noteRepo)
	noteHandler := handlers.NewNoteHandler(noteSvc)
	registerNoteRoutes(r, noteHandler)
}

// rootHandler godoc
// @Summary      Health Check
// @Description  Returns a simple health status message.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       / [get]
func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, dto.MessageResponse{Message: "Healthy"})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerNoteRoutes(r gin.IRouter, h *handlers.NoteHandler) {
	r.POST("/notes", h.Create)
	r.GET("/notes", h.List)
	r.GET("/notes/:id", h.GetByID)
	r.PUT("/notes/:id", h.Update)
	r.DELETE("/notes/:id", h.Delete)
}
