package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"reelrank/models"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("movie not found")
	ErrDuplicateTitle = errors.New("a movie with this title already exists")
)

// pgUniqueViolation is the SQLSTATE PostgreSQL reports when an insert
// trips a unique constraint.
const pgUniqueViolation = "23505"

// MovieStore owns all access to the movies table.
type MovieStore struct {
	db *sql.DB
}

func NewMovieStore(db *sql.DB) *MovieStore {
	return &MovieStore{db: db}
}

// List returns every stored movie ordered by id. Rating order is the
// ranking pass's job, but a stable base order keeps ties deterministic.
func (s *MovieStore) List(ctx context.Context) ([]models.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, img_url, created_at, updated_at
		FROM movies
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var m models.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (s *MovieStore) GetByID(ctx context.Context, id int) (*models.Movie, error) {
	query := `
		SELECT id, title, year, description, rating, ranking, review, img_url, created_at, updated_at
		FROM movies
		WHERE id = $1
	`
	var m models.Movie
	err := s.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return &m, nil
}

// Create inserts a new movie. Rating, ranking and review start out NULL
// until the user rates it.
func (s *MovieStore) Create(ctx context.Context, title string, year int, description, imgURL string) (*models.Movie, error) {
	query := `
		INSERT INTO movies (title, year, description, img_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, year, description, rating, ranking, review, img_url, created_at, updated_at
	`
	var m models.Movie
	err := s.db.QueryRowContext(ctx, query, title, year, description, imgURL).
		Scan(&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return &m, nil
}

// UpdateReview sets the user's rating and review for a movie.
func (s *MovieStore) UpdateReview(ctx context.Context, id int, rating float64, review string) error {
	query := `
		UPDATE movies
		SET rating = $1, review = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, rating, review, id)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", id, err)
	}
	return checkRowAffected(result, id)
}

// UpdateRanking persists a recomputed ranking position.
func (s *MovieStore) UpdateRanking(ctx context.Context, id, ranking int) error {
	query := `UPDATE movies SET ranking = $1 WHERE id = $2`
	result, err := s.db.ExecContext(ctx, query, ranking, id)
	if err != nil {
		return fmt.Errorf("failed to update ranking for movie %d: %w", id, err)
	}
	return checkRowAffected(result, id)
}

func (s *MovieStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	return checkRowAffected(result, id)
}

func checkRowAffected(result sql.Result, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for movie %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
