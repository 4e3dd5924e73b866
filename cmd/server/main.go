package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jnt48/R-RoadmapGenerator/internal/config"
	"github.com/jnt48/R-RoadmapGenerator/internal/handlers"
	"github.com/jnt48/R-RoadmapGenerator/internal/middleware"
	"github.com/jnt48/R-RoadmapGenerator/internal/router"
	"github.com/jnt48/R-RoadmapGenerator/internal/services"
)

func main() {
	log.Println("🚀 Starting Roadmap Generator Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(
		context.Background(),
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		cfg.GeminiConcurrentReqs,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 3: Initialize Services ────
	youtubeService := services.NewYouTubeService()
	metadataService := services.NewMetadataService()
	pipeline := services.NewPipeline(youtubeService, geminiService)

	// ──── Step 4: Initialize Handlers ────
	summaryHandler := handlers.NewSummaryHandler(pipeline)
	quizHandler := handlers.NewQuizHandler(pipeline)
	roadmapHandler := handlers.NewRoadmapHandler(pipeline)
	chatHandler := handlers.NewChatHandler(pipeline)
	validateHandler := handlers.NewValidateHandler(metadataService)

	// ──── Step 5: Start HTTP Server ────
	apiLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	r := router.New(
		summaryHandler,
		quizHandler,
		roadmapHandler,
		chatHandler,
		validateHandler,
		apiLimiter,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Roadmap Generator Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
