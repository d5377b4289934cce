package main

import (
	"log"
	"net/http"
	"time"

	"reelrank/config"
	"reelrank/database"
	"reelrank/handlers"
	"reelrank/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.TMDBAPIKey == "" {
		log.Println("Warning: TMDB_API_KEY is not set, catalog search will fail")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := services.NewMovieStore(db)
	catalog := services.NewTMDBClient(cfg.TMDBAPIKey, &http.Client{Timeout: 10 * time.Second})
	sessions := services.NewSessionStore(cfg)

	app, err := handlers.New(cfg, store, catalog, sessions, "templates")
	if err != nil {
		log.Fatal("Failed to initialize handlers:", err)
	}

	// Setup routes
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Static files
	fs := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Get("/", app.HomeHandler)
	r.Get("/add", app.AddHandler)
	r.Post("/add", app.AddHandler)
	r.Get("/find", app.FindHandler)
	r.Get("/edit", app.EditHandler)
	r.Post("/edit", app.EditHandler)
	r.Get("/delete", app.DeleteHandler)

	// Start server
	addr := ":" + cfg.ServerPort
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
