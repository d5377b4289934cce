package services

import (
	"sort"

	"reelrank/models"
)

// AssignRankings sorts movies ascending by rating and assigns each a
// ranking of N-index, so the highest rated movie gets ranking 1 and the
// lowest gets N. Unrated movies sort before everything else and end up
// at the bottom of the table. The sort is stable, so equally rated
// movies keep the order they came in. Pure function; persisting the new
// rankings is the caller's job.
func AssignRankings(movies []models.Movie) []models.Movie {
	sort.SliceStable(movies, func(i, j int) bool {
		a, b := movies[i].Rating, movies[j].Rating
		if a.Valid != b.Valid {
			return !a.Valid
		}
		return a.Float64 < b.Float64
	})

	n := len(movies)
	for i := range movies {
		movies[i].Ranking.Int64 = int64(n - i)
		movies[i].Ranking.Valid = true
	}
	return movies
}
