package services

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"reelrank/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// newTestStore connects to the database named by TEST_DATABASE_URL and
// starts from an empty movies table. Tests skip when no database is
// available.
func newTestStore(t *testing.T) *MovieStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping store tests")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))

	_, err = db.Exec("TRUNCATE movies RESTART IDENTITY")
	require.NoError(t, err)

	return NewMovieStore(db)
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "Inception", 2010, "A thief who steals corporate secrets.", "https://image.tmdb.org/t/p/w500/inception.jpg")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", got.Title)
	assert.Equal(t, 2010, got.Year)
	assert.Equal(t, "A thief who steals corporate secrets.", got.Description)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/inception.jpg", got.ImgURL)

	// Optional fields start out unset
	assert.False(t, got.Rating.Valid)
	assert.False(t, got.Ranking.Valid)
	assert.False(t, got.Review.Valid)
}

func TestCreateDuplicateTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Create(ctx, "Inception", 2010, "First copy.", "https://example.com/a.jpg")
	require.NoError(t, err)

	_, err = store.Create(ctx, "Inception", 2010, "Second copy.", "https://example.com/b.jpg")
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	movies, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestUpdateReview(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "Inception", 2010, "A thief.", "https://example.com/a.jpg")
	require.NoError(t, err)

	require.NoError(t, store.UpdateReview(ctx, created.ID, 7.5, "great"))

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, got.Rating.Valid)
	assert.Equal(t, 7.5, got.Rating.Float64)
	require.True(t, got.Review.Valid)
	assert.Equal(t, "great", got.Review.String)
}

func TestUpdateReviewMissingMovie(t *testing.T) {
	store := newTestStore(t)

	err := store.UpdateReview(context.Background(), 9999, 7.5, "great")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGetFails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "Inception", 2010, "A thief.", "https://example.com/a.jpg")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, created.ID), ErrNotFound)
}

func TestGetByIDMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRankingScenario(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	titles := []struct {
		title  string
		rating float64
	}{
		{"Seven Out of Ten", 7.0},
		{"Nine Out of Ten", 9.0},
		{"Eight Out of Ten", 8.0},
	}
	ids := make([]int, 0, len(titles))
	for _, tc := range titles {
		created, err := store.Create(ctx, tc.title, 2020, "desc", "https://example.com/p.jpg")
		require.NoError(t, err)
		require.NoError(t, store.UpdateReview(ctx, created.ID, tc.rating, ""))
		ids = append(ids, created.ID)
	}

	movies, err := store.List(ctx)
	require.NoError(t, err)

	for _, m := range AssignRankings(movies) {
		require.NoError(t, store.UpdateRanking(ctx, m.ID, int(m.Ranking.Int64)))
	}

	expected := map[int]int64{ids[0]: 3, ids[1]: 1, ids[2]: 2}
	for id, want := range expected {
		got, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		require.True(t, got.Ranking.Valid)
		assert.Equal(t, want, got.Ranking.Int64)
	}
}
