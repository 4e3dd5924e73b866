package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jnt48/R-RoadmapGenerator/internal/handlers"
	"github.com/jnt48/R-RoadmapGenerator/internal/middleware"
)

func New(
	summaryHandler *handlers.SummaryHandler,
	quizHandler *handlers.QuizHandler,
	roadmapHandler *handlers.RoadmapHandler,
	chatHandler *handlers.ChatHandler,
	validateHandler *handlers.ValidateHandler,
	apiLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Post("/validate-url", validateHandler.Validate)
		r.Post("/summarize", summaryHandler.Generate)
		r.Post("/generate-mcqs", quizHandler.Generate)
		r.Post("/generate-roadmap", roadmapHandler.Generate)
		r.Post("/chat", chatHandler.Send)
	})

	return r
}
