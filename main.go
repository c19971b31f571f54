package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/pacispopuli/radio-backend/ai"
	"github.com/pacispopuli/radio-backend/api"
	"github.com/pacispopuli/radio-backend/api/handlers"
	"github.com/pacispopuli/radio-backend/config"
	"github.com/pacispopuli/radio-backend/storage"
	"github.com/pacispopuli/radio-backend/tts"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	store := storage.NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey)
	llm := ai.NewService(context.Background(), cfg)
	synthesizer := tts.NewElevenLabs(cfg.ElevenLabsAPIKey, cfg.ElevenLabsBaseURL)

	router := gin.Default()
	api.SetupRoutes(router, handlers.New(store, llm, synthesizer, cfg))

	log.Printf("Radio Pacis Populi API listening on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
