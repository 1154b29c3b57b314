package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Tecosi/voice-container-counter/internal/container"
	"github.com/Tecosi/voice-container-counter/internal/dictation"
	"github.com/Tecosi/voice-container-counter/internal/ws"
)

func NewRouter(
	containerHandler *container.Handler,
	dictationHandler *dictation.Handler,
	wsHandler *ws.Handler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── CONTAINER ROUTES ─────────────────────────
	containers := r.Group("/containers")
	{
		containers.POST("", containerHandler.CreateContainer)
		containers.GET("", containerHandler.ListContainers)
		containers.GET("/:id", containerHandler.GetContainer)
		containers.PATCH("/:id", containerHandler.RenameContainer)
		containers.DELETE("/:id", containerHandler.DeleteContainer)

		containers.POST("/:id/lines", containerHandler.AddLine)
		containers.DELETE("/:id/lines/:lineID", containerHandler.DeleteLine)
		containers.GET("/:id/summary", containerHandler.GetSummary)
		containers.POST("/:id/dictation", containerHandler.AddDictation)
	}

	// ───────────────────────── DICTATION ROUTES ─────────────────────────
	r.POST("/dictation/parse", dictationHandler.ParseText)
	r.GET("/ws/dictation", wsHandler.Dictation)

	return r
}
