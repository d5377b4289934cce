package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"reelrank/models"
	"reelrank/services"
)

type EditData struct {
	CurrentPage string
	Movie       *models.Movie
	Form        RateMovieForm
	Errors      []string
	Flashes     []string
}

// EditHandler shows and processes the rating/review form for one movie.
func (a *App) EditHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	movie, err := a.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		slog.Error("Error getting movie", "movie_id", id, "error", err)
		http.Error(w, "Failed to load movie", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		form := RateMovieForm{Review: movie.Review.String}
		if movie.Rating.Valid {
			form.Rating = strconv.FormatFloat(movie.Rating.Float64, 'f', -1, 64)
		}
		a.render(w, "edit", EditData{CurrentPage: "/", Movie: movie, Form: form})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := RateMovieForm{
		Rating: r.PostFormValue("rating"),
		Review: r.PostFormValue("review"),
	}
	if errs := form.Validate(); len(errs) > 0 {
		a.render(w, "edit", EditData{CurrentPage: "/", Movie: movie, Form: form, Errors: errs})
		return
	}

	if err := a.store.UpdateReview(r.Context(), id, form.ParsedRating(), form.Review); err != nil {
		slog.Error("Error updating movie", "movie_id", id, "error", err)
		http.Error(w, "Failed to update movie", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
