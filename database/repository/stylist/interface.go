package stylistRepo

import (
	"bokaenkelt/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StylistRepository defines methods for stylist data access.
type StylistRepository interface {
	// GetByID retrieves a stylist by its unique ID, nil when not found.
	GetByID(id string) (*models.Stylist, error)
	// GetByEmail retrieves a stylist by email, nil when not found.
	GetByEmail(email string) (*models.Stylist, error)
	// GetAllActive retrieves all active stylists.
	GetAllActive() ([]models.Stylist, error)
	// GetAll retrieves all stylists, active or not.
	GetAll() ([]models.Stylist, error)
	// Create inserts a new stylist record.
	Create(stylist *models.Stylist) error
	// UpdateFields applies a partial update by ID and returns the updated
	// stylist, nil when not found.
	UpdateFields(id string, fields bson.M) (*models.Stylist, error)
	// Deactivate soft-deletes a stylist.
	Deactivate(id string) error
	// SetTokenHash stores the hash of the stylist's current auth token.
	SetTokenHash(id, tokenHash string) error
	// TokenHashByID returns the stored auth token hash for middleware checks.
	TokenHashByID(id string) (string, error)
}
