// File: cmd/historyd/main.go

// historyd is the development backend for the 华夏历史 assistant: it serves
// the catalog API, account endpoints and the AI chat stream.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/huaxia-history/go-huaxia/internal/config"
	"github.com/huaxia-history/go-huaxia/internal/content"
	"github.com/huaxia-history/go-huaxia/internal/domain"
	"github.com/huaxia-history/go-huaxia/internal/handlers"
	"github.com/huaxia-history/go-huaxia/internal/middleware"
	"github.com/huaxia-history/go-huaxia/internal/ratelimit"
	"github.com/huaxia-history/go-huaxia/internal/repository/user"
	"github.com/huaxia-history/go-huaxia/internal/services"
	"github.com/huaxia-history/go-huaxia/internal/services/llm"
	"github.com/huaxia-history/go-huaxia/internal/services/user_services"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("historyd")

	secret := cfg.JWTSecretKey
	if secret == "" {
		secret = "dev-only-secret"
		logger.Warn("JWT_SECRET_KEY not set, using development secret")
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Services ---
	userRepo := user.NewGormUserRepository(db)
	authService := user_services.NewAuthService(userRepo, secret, logger)

	var responder llm.Responder
	if cfg.OpenAIAPIKey != "" {
		responder = llm.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ChatModel, logger)
		logger.Info("using OpenAI-compatible responder", "model", cfg.ChatModel)
	} else {
		responder = &llm.CannedResponder{Delay: 50 * time.Millisecond}
		logger.Warn("OPENAI_API_KEY not set, serving canned replies")
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	contentHandler := handlers.NewContentHandler(content.NewRepository())
	chatHandler := handlers.NewChatHandler(responder)

	streamLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.ChatStreamConfig(cfg.RateLimitRPM))
	defer streamLimiter.Close()
	authLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())
	defer authLimiter.Close()

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Use(middleware.RateLimitMiddleware(authLimiter, "auth"))
	authRoutes.HandleFunc("/register", authHandler.Register).Methods("POST")
	authRoutes.HandleFunc("/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/dynasty/list", contentHandler.ListDynasties).Methods("GET")
	api.HandleFunc("/dynasty/{id:[0-9]+}", contentHandler.GetDynasty).Methods("GET")
	api.HandleFunc("/person/list", contentHandler.ListPersons).Methods("GET")
	api.HandleFunc("/person/random", contentHandler.GetRandomPersons).Methods("GET")
	api.HandleFunc("/person/{id:[0-9]+}", contentHandler.GetPerson).Methods("GET")
	api.HandleFunc("/events", contentHandler.ListEvents).Methods("GET")
	api.HandleFunc("/events/{id:[0-9]+}", contentHandler.GetEvent).Methods("GET")
	api.HandleFunc("/relic/list", contentHandler.ListRelics).Methods("GET")
	api.HandleFunc("/relic/search", contentHandler.SearchRelics).Methods("GET")
	api.HandleFunc("/relic/dynasty/{id:[0-9]+}", contentHandler.GetRelicsByDynasty).Methods("GET")
	api.HandleFunc("/relic/{id:[0-9]+}", contentHandler.GetRelic).Methods("GET")
	api.HandleFunc("/place-name/list", contentHandler.ListPlaceNames).Methods("GET")
	api.HandleFunc("/place-name/search", contentHandler.SearchPlaceNames).Methods("GET")
	api.HandleFunc("/place-name/page", contentHandler.GetPlaceNamePage).Methods("GET")
	api.HandleFunc("/place-name/{id:[0-9]+}", contentHandler.GetPlaceName).Methods("GET")

	stream := api.PathPrefix("/ai").Subrouter()
	stream.Use(middleware.OptionalAuth(authService))
	stream.Use(middleware.RateLimitMiddleware(streamLimiter, "chat-stream"))
	stream.HandleFunc("/chat/stream", chatHandler.Stream).Methods("POST")

	// --- Server Configuration ---
	port := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	logger.Info("server starting", "port", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
