package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"reelrank/models"
	"reelrank/services"
)

type HomeData struct {
	CurrentPage string
	Movies      []models.Movie
	Flashes     []string
}

// HomeHandler lists the collection ranked by rating. Rankings are
// recomputed on every view; only rows whose ranking actually changed
// are written back.
func (a *App) HomeHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := a.store.List(r.Context())
	if err != nil {
		slog.Error("Error listing movies", "error", err)
		http.Error(w, "Failed to load movies", http.StatusInternalServerError)
		return
	}

	previous := make(map[int]int64, len(movies))
	for _, m := range movies {
		if m.Ranking.Valid {
			previous[m.ID] = m.Ranking.Int64
		}
	}

	ranked := services.AssignRankings(movies)
	for _, m := range ranked {
		if old, ok := previous[m.ID]; ok && old == m.Ranking.Int64 {
			continue
		}
		if err := a.store.UpdateRanking(r.Context(), m.ID, int(m.Ranking.Int64)); err != nil {
			slog.Error("Error persisting ranking", "movie_id", m.ID, "error", err)
		}
	}

	// AssignRankings leaves the list worst-first; show the top movie first
	slices.Reverse(ranked)

	data := HomeData{
		CurrentPage: "/",
		Movies:      ranked,
		Flashes:     a.sessions.Flashes(w, r),
	}
	a.render(w, "index", data)
}
