package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"reelhub/config"
	"reelhub/controllers"
	"reelhub/db"
	"reelhub/middlewares"
	"reelhub/routes"
	"reelhub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := db.Connect(cfg.Database.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	database := client.Database(db.DatabaseName(cfg.Database.URI))
	store := db.NewMongoReviewStore(database, cfg.Database.ReviewsCollection)

	verifier, err := services.NewCognitoVerifier(context.Background(), cfg.Cognito.Region)
	if err != nil {
		log.Fatalf("Failed to set up token verifier: %v", err)
	}

	tmdb := services.NewTMDBService(cfg.TMDB.APIKey, cfg.TMDB.BaseURL)

	router := setupRouter(cfg, verifier, tmdb, store)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %d", cfg.Server.Port)
		log.Printf("Frontend allowed: %s", cfg.Cors.AllowedOrigin)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
}

func setupRouter(cfg *config.Config, verifier services.TokenVerifier, tmdb *services.TMDBService, store db.ReviewStore) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Only the configured frontend origin may call this API
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Cors.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	movies := controllers.NewMovieController(tmdb)
	reviews := controllers.NewReviewController(store)

	routes.SetupMovieRoutes(router, movies)

	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(verifier))
	routes.SetupReviewRoutes(router, auth, reviews)

	return router
}
