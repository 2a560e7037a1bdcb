package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"whatshouldweeat/internal/service"
	"whatshouldweeat/internal/transport/rest/handler"
	"whatshouldweeat/internal/transport/rest/middleware"
	"whatshouldweeat/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	QuizService  *service.QuizService
	UsageService *service.UsageService
	PlaceService *service.PlaceService
	TokenService *service.TokenService
	RateLimiter  *middleware.RateLimiter
	WSHub        *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(c.QuizService, c.UsageService, c.TokenService)
	questionHandler := handler.NewQuestionHandler(c.QuizService)
	restaurantHandler := handler.NewRestaurantHandler(c.PlaceService)
	usageHandler := handler.NewUsageHandler(c.UsageService)
	wsHandler := ws.NewHandler(c.WSHub, c.QuizService, c.UsageService, c.TokenService)

	// Initialize middleware
	sessionMW := middleware.NewSessionMiddleware(c.TokenService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)
	if c.RateLimiter != nil {
		r.Use(c.RateLimiter.Limit)
	}

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/quiz/start", quizHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questions/generate", questionHandler.Generate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/restaurants/search", restaurantHandler.Search).Methods("POST", "OPTIONS")
	v1.HandleFunc("/usage", usageHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/usage/track", usageHandler.Track).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/quiz", wsHandler.QuizWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session routes (require a session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(sessionMW.RequireSession)

	sessionRoutes.HandleFunc("/quiz/answers", quizHandler.Answer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/quiz/recommendation", quizHandler.Recommend).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization, X-Client-ID"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
