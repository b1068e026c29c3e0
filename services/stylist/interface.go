package stylist

import "bokaenkelt/models"

// RegisterRequest is the inbound payload for creating a stylist account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

// AuthResult carries an issued token with its stylist profile.
type AuthResult struct {
	Token   string          `json:"token"`
	Stylist *models.Stylist `json:"stylist"`
}

// StylistService defines stylist account and profile operations.
type StylistService interface {
	// Register creates a stylist account with default availability.
	Register(req RegisterRequest) (*models.Stylist, error)
	// Authenticate verifies credentials and issues a token.
	Authenticate(email, password string) (*AuthResult, error)
	// GetByID retrieves one stylist profile.
	GetByID(id string) (*models.Stylist, error)
	// ListActive retrieves the public list of active stylists.
	ListActive() ([]models.Stylist, error)
	// ListAll retrieves every stylist, active or not (admin view).
	ListAll() ([]models.Stylist, error)
	// UpdateProfile applies a partial profile update, validating availability.
	UpdateProfile(id string, update models.StylistUpdate) (*models.Stylist, error)
	// Deactivate soft-deletes a stylist; their profile stops being listed.
	Deactivate(id string) error
}
