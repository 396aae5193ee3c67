package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"landmarks-backend/internal/api"
	"landmarks-backend/internal/auth"
	"landmarks-backend/internal/database"
	"landmarks-backend/internal/env"
	"landmarks-backend/internal/geosearch"
	"landmarks-backend/web"
)

func main() {
	env.Load()

	// Get database path from environment or default
	dbPath := env.Get("LANDMARKS_DB_PATH", "./landmarks.db")

	// Ensure absolute path
	if !filepath.IsAbs(dbPath) {
		cwd, _ := os.Getwd()
		dbPath = filepath.Join(cwd, dbPath)
	}

	// Initialize database
	log.Printf("Initializing database at %s", dbPath)
	db, err := database.Open(database.Config{Path: dbPath})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	userRepo := database.NewUserRepo(db)
	sessionRepo := database.NewSessionRepo(db)
	favoriteRepo := database.NewFavoriteRepo(db)

	sessionTTL := time.Duration(env.GetInt("LANDMARKS_SESSION_HOURS", 24)) * time.Hour
	authSvc := auth.NewService(userRepo, sessionRepo, sessionTTL)

	searchClient := geosearch.NewClient(env.Get("LANDMARKS_GEOSEARCH_URL", ""))

	handlers := api.NewHandlers(authSvc, favoriteRepo, searchClient, auth.DefaultRateLimiter())

	templates, err := web.Templates()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = api.NewRenderer(templates)

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	api.RegisterRoutes(e, handlers)

	// Serve embedded static assets (map frontend)
	staticFS, err := web.Static()
	if err != nil {
		log.Fatalf("Failed to load static assets: %v", err)
	}
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))))

	// Prune expired sessions in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		for range ticker.C {
			if n, err := sessionRepo.DeleteExpired(); err != nil {
				log.Printf("Session cleanup failed: %v", err)
			} else if n > 0 {
				log.Printf("Removed %d expired sessions", n)
			}
		}
	}()

	port := env.Get("LANDMARKS_PORT", "8080")
	log.Printf("Starting landmarks backend on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
