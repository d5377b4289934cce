package handlers

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"reelrank/config"
	"reelrank/models"
	"reelrank/services"
)

// Store is the slice of the movie store the handlers need.
type Store interface {
	List(ctx context.Context) ([]models.Movie, error)
	GetByID(ctx context.Context, id int) (*models.Movie, error)
	Create(ctx context.Context, title string, year int, description, imgURL string) (*models.Movie, error)
	UpdateReview(ctx context.Context, id int, rating float64, review string) error
	UpdateRanking(ctx context.Context, id, ranking int) error
	Delete(ctx context.Context, id int) error
}

// Catalog is the slice of the TMDB client the handlers need.
type Catalog interface {
	Search(ctx context.Context, query string) ([]services.CatalogResult, error)
	Get(ctx context.Context, id int) (*services.CatalogResult, error)
}

// App wires the handlers to their collaborators. Everything is handed in
// at construction so tests can substitute doubles.
type App struct {
	cfg       *config.Config
	store     Store
	catalog   Catalog
	sessions  *services.SessionStore
	templates map[string]*template.Template
}

func New(cfg *config.Config, store Store, catalog Catalog, sessions *services.SessionStore, templatesDir string) (*App, error) {
	pages := []string{"index", "add", "select", "edit"}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).ParseFiles(
			filepath.Join(templatesDir, "layouts", "base.html"),
			filepath.Join(templatesDir, "components", "navigation.html"),
			filepath.Join(templatesDir, "pages", page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &App{
		cfg:       cfg,
		store:     store,
		catalog:   catalog,
		sessions:  sessions,
		templates: templates,
	}, nil
}

func (a *App) render(w http.ResponseWriter, page string, data any) {
	tmpl, ok := a.templates[page]
	if !ok {
		http.Error(w, "unknown page "+page, http.StatusInternalServerError)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering template", "page", page, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
