package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Tecosi/voice-container-counter/internal/config"
	"github.com/Tecosi/voice-container-counter/internal/container"
	"github.com/Tecosi/voice-container-counter/internal/dictation"
	"github.com/Tecosi/voice-container-counter/internal/router"
	"github.com/Tecosi/voice-container-counter/internal/ws"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()

	// ───────────────────────── STORAGE ─────────────────────────
	repo := container.NewMemoryRepository()

	// ───────────────────────── SERVICES ─────────────────────────
	containerService := container.NewService(repo)

	// ───────────────────────── HANDLERS ─────────────────────────
	containerHandler := container.NewHandler(containerService)
	dictationHandler := dictation.NewHandler()
	wsHandler := ws.NewHandler(containerService, cfg.ConfirmWords)

	r := router.NewRouter(containerHandler, dictationHandler, wsHandler, cfg.AllowedOrigins)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ server stopped:", err)
	}
}
