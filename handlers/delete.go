package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"reelrank/services"
)

// DeleteHandler removes a movie and returns to the ranked list.
func (a *App) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid movie id", http.StatusBadRequest)
		return
	}

	if err := a.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Movie not found", http.StatusNotFound)
			return
		}
		slog.Error("Error deleting movie", "movie_id", id, "error", err)
		http.Error(w, "Failed to delete movie", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
