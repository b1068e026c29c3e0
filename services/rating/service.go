package rating

import (
	"errors"
	"fmt"
	"time"

	ratingRepo "bokaenkelt/database/repository/rating"
	stylistRepo "bokaenkelt/database/repository/stylist"
	"bokaenkelt/models"

	"github.com/google/uuid"
)

// Service-level errors, mapped to HTTP statuses by the handlers.
var (
	ErrOutOfRange      = errors.New("rating must be between 0 and 5")
	ErrStylistNotFound = errors.New("stylist not found")
)

// SubmitRequest is the inbound payload for submitting a rating.
type SubmitRequest struct {
	Stylist string  `json:"stylist" binding:"required"`
	Rating  float64 `json:"rating" binding:"required"`
	Name    string  `json:"name"`
	Review  string  `json:"review"`
}

// RatingService defines rating submission and listing operations.
type RatingService interface {
	// Submit records a rating and updates the stylist's aggregate.
	Submit(req SubmitRequest) (*models.Rating, error)
	// ListAll retrieves every rating.
	ListAll() ([]models.Rating, error)
	// ListForStylist retrieves the ratings for one stylist.
	ListForStylist(stylistID string) ([]models.Rating, error)
}

// DefaultRatingService implements RatingService over the rating repository.
type DefaultRatingService struct {
	Repo     ratingRepo.RatingRepository
	Stylists stylistRepo.StylistRepository
}

// NewDefaultRatingService wires a rating service.
func NewDefaultRatingService(repo ratingRepo.RatingRepository, stylists stylistRepo.StylistRepository) *DefaultRatingService {
	return &DefaultRatingService{Repo: repo, Stylists: stylists}
}

// Submit records a rating. The stylist's average and review count are
// recomputed by the repository inside the insert transaction, so concurrent
// submissions each see the other's rating in the stored aggregate.
func (s *DefaultRatingService) Submit(req SubmitRequest) (*models.Rating, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return nil, ErrOutOfRange
	}
	stylist, err := s.Stylists.GetByID(req.Stylist)
	if err != nil {
		return nil, fmt.Errorf("failed to load stylist: %w", err)
	}
	if stylist == nil {
		return nil, ErrStylistNotFound
	}

	name := req.Name
	if name == "" {
		name = "Anonymous"
	}
	rating := &models.Rating{
		ID:        uuid.New().String(),
		Name:      name,
		StylistID: req.Stylist,
		Rating:    req.Rating,
		Review:    req.Review,
		CreatedAt: time.Now(),
	}

	if err := s.Repo.CreateWithAggregate(rating); err != nil {
		return nil, fmt.Errorf("failed to persist rating: %w", err)
	}
	return rating, nil
}

// ListAll retrieves every rating.
func (s *DefaultRatingService) ListAll() ([]models.Rating, error) {
	return s.Repo.GetAll()
}

// ListForStylist retrieves the ratings for one stylist.
func (s *DefaultRatingService) ListForStylist(stylistID string) ([]models.Rating, error) {
	return s.Repo.GetByStylist(stylistID)
}
