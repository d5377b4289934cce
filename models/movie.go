package models

import (
	"database/sql"
	"time"
)

type Movie struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	Rating      sql.NullFloat64 `json:"rating"`
	Ranking     sql.NullInt64   `json:"ranking"`
	Review      sql.NullString  `json:"review"`
	ImgURL      string          `json:"img_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
