package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"reelrank/services"
)

type AddData struct {
	CurrentPage string
	Form        AddMovieForm
	Errors      []string
	Flashes     []string
}

type SelectData struct {
	CurrentPage string
	Query       string
	Results     []services.CatalogResult
	Flashes     []string
}

// AddHandler shows the title form and, on submit, searches the catalog
// and presents the candidates for the user to pick from.
func (a *App) AddHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		data := AddData{
			CurrentPage: "/add",
			Flashes:     a.sessions.Flashes(w, r),
		}
		a.render(w, "add", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := AddMovieForm{Title: r.PostFormValue("title")}
	if errs := form.Validate(); len(errs) > 0 {
		data := AddData{CurrentPage: "/add", Form: form, Errors: errs}
		a.render(w, "add", data)
		return
	}

	results, err := a.catalog.Search(r.Context(), form.Title)
	if err != nil {
		slog.Error("Error searching catalog", "query", form.Title, "error", err)
		http.Error(w, "Movie catalog is unavailable", http.StatusBadGateway)
		return
	}

	data := SelectData{
		CurrentPage: "/add",
		Query:       form.Title,
		Results:     results,
	}
	a.render(w, "select", data)
}

// FindHandler imports the chosen catalog result into the collection and
// sends the user straight to the rating form for the new movie.
func (a *App) FindHandler(w http.ResponseWriter, r *http.Request) {
	externalID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	details, err := a.catalog.Get(r.Context(), externalID)
	if err != nil {
		slog.Error("Error fetching catalog details", "tmdb_id", externalID, "error", err)
		http.Error(w, "Movie catalog is unavailable", http.StatusBadGateway)
		return
	}

	movie, err := a.store.Create(r.Context(), details.Title, releaseYear(details.ReleaseDate), details.Overview, services.ImageURL(details.PosterPath))
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTitle) {
			if err := a.sessions.AddFlash(w, r, details.Title+" is already in your collection"); err != nil {
				slog.Error("Error saving flash message", "error", err)
			}
			http.Redirect(w, r, "/add", http.StatusSeeOther)
			return
		}
		slog.Error("Error creating movie", "title", details.Title, "error", err)
		http.Error(w, "Failed to add movie", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/edit?id="+strconv.Itoa(movie.ID), http.StatusSeeOther)
}

// releaseYear pulls the year out of a TMDB release date ("2010-07-15").
func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
