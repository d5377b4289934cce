package handlers

import (
	"strconv"
	"strings"
)

// AddMovieForm is the title-search form on the add page.
type AddMovieForm struct {
	Title string
}

func (f *AddMovieForm) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, "Movie title is required")
	}
	return errs
}

// RateMovieForm is the rating/review form on the edit page. Rating
// arrives as text and must parse as a number between 0 and 10.
type RateMovieForm struct {
	Rating string
	Review string

	parsedRating float64
}

func (f *RateMovieForm) Validate() []string {
	var errs []string

	rating, err := strconv.ParseFloat(strings.TrimSpace(f.Rating), 64)
	if err != nil {
		errs = append(errs, "Rating must be a number, e.g. 7.5")
	} else if rating < 0 || rating > 10 {
		errs = append(errs, "Rating must be between 0 and 10")
	} else {
		f.parsedRating = rating
	}

	return errs
}

// ParsedRating returns the numeric rating. Only meaningful after
// Validate reported no errors.
func (f *RateMovieForm) ParsedRating() float64 {
	return f.parsedRating
}
