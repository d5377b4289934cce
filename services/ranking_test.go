package services

import (
	"database/sql"
	"testing"

	"reelrank/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratedMovie(id int, title string, rating float64) models.Movie {
	return models.Movie{
		ID:     id,
		Title:  title,
		Rating: sql.NullFloat64{Float64: rating, Valid: true},
	}
}

func rankingsByID(movies []models.Movie) map[int]int64 {
	out := make(map[int]int64, len(movies))
	for _, m := range movies {
		out[m.ID] = m.Ranking.Int64
	}
	return out
}

func TestAssignRankingsHighestRatingGetsFirstPlace(t *testing.T) {
	movies := []models.Movie{
		ratedMovie(1, "Inception", 7.0),
		ratedMovie(2, "The Matrix", 9.0),
		ratedMovie(3, "Alien", 8.0),
	}

	ranked := AssignRankings(movies)
	require.Len(t, ranked, 3)

	got := rankingsByID(ranked)
	assert.Equal(t, int64(3), got[1])
	assert.Equal(t, int64(1), got[2])
	assert.Equal(t, int64(2), got[3])
}

func TestAssignRankingsReturnsAscendingOrder(t *testing.T) {
	movies := []models.Movie{
		ratedMovie(1, "Inception", 7.0),
		ratedMovie(2, "The Matrix", 9.0),
		ratedMovie(3, "Alien", 8.0),
	}

	ranked := AssignRankings(movies)

	// Lowest rated first, every movie still present exactly once
	require.Len(t, ranked, 3)
	assert.Equal(t, "Inception", ranked[0].Title)
	assert.Equal(t, "Alien", ranked[1].Title)
	assert.Equal(t, "The Matrix", ranked[2].Title)
}

func TestAssignRankingsStableOnTies(t *testing.T) {
	movies := []models.Movie{
		ratedMovie(10, "First In", 8.0),
		ratedMovie(11, "Second In", 8.0),
		ratedMovie(12, "Third In", 8.0),
	}

	ranked := AssignRankings(movies)

	// Equal ratings keep their incoming order
	assert.Equal(t, 10, ranked[0].ID)
	assert.Equal(t, 11, ranked[1].ID)
	assert.Equal(t, 12, ranked[2].ID)

	got := rankingsByID(ranked)
	assert.Equal(t, int64(3), got[10])
	assert.Equal(t, int64(2), got[11])
	assert.Equal(t, int64(1), got[12])
}

func TestAssignRankingsUnratedSortsLowest(t *testing.T) {
	movies := []models.Movie{
		ratedMovie(1, "Rated Low", 2.5),
		{ID: 2, Title: "Never Rated"},
		ratedMovie(3, "Rated High", 9.5),
	}

	ranked := AssignRankings(movies)

	// The unrated movie sorts before everything, so it takes the last place
	assert.Equal(t, "Never Rated", ranked[0].Title)
	require.True(t, ranked[0].Ranking.Valid)

	got := rankingsByID(ranked)
	assert.Equal(t, int64(3), got[2])
	assert.Equal(t, int64(2), got[1])
	assert.Equal(t, int64(1), got[3])
}

func TestAssignRankingsSingleMovie(t *testing.T) {
	ranked := AssignRankings([]models.Movie{ratedMovie(1, "Only One", 5.0)})

	require.Len(t, ranked, 1)
	assert.Equal(t, int64(1), ranked[0].Ranking.Int64)
}

func TestAssignRankingsEmpty(t *testing.T) {
	assert.Empty(t, AssignRankings(nil))
}
