package ratingRepo

import "bokaenkelt/models"

// RatingRepository defines methods for rating data access.
type RatingRepository interface {
	// GetAll retrieves all ratings.
	GetAll() ([]models.Rating, error)
	// GetByStylist retrieves all ratings for one stylist.
	GetByStylist(stylistID string) ([]models.Rating, error)
	// CreateWithAggregate inserts the rating, recomputes the stylist's
	// average and review count from the post-insert set, and writes both
	// onto the stylist document, all in one transaction, so the stored
	// aggregate can never diverge from the inserted ratings even under
	// concurrent submissions.
	CreateWithAggregate(rating *models.Rating) error
}
