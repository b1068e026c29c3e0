package adminRepo

import "bokaenkelt/models"

// AdminRepository defines methods for super-admin account data access.
type AdminRepository interface {
	// GetByEmail retrieves a super-admin by email, nil when not found.
	GetByEmail(email string) (*models.SuperAdmin, error)
	// GetByID retrieves a super-admin by ID, nil when not found.
	GetByID(id string) (*models.SuperAdmin, error)
	// SetTokenHash stores the hash of the admin's current auth token.
	SetTokenHash(id, tokenHash string) error
	// TokenHashByID returns the stored auth token hash for middleware checks.
	TokenHashByID(id string) (string, error)
}
