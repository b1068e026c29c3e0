package customerRepo

import "bokaenkelt/models"

// CustomerRepository defines methods for customer account data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID, nil when not found.
	GetByID(id string) (*models.Customer, error)
	// GetByEmail retrieves a customer by email, nil when not found.
	GetByEmail(email string) (*models.Customer, error)
	// GetAll retrieves all customers.
	GetAll() ([]models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// Update overwrites the mutable profile fields of a customer.
	Update(customer *models.Customer) error
	// SetTokenHash stores the hash of the customer's current auth token.
	SetTokenHash(id, tokenHash string) error
	// TokenHashByID returns the stored auth token hash for middleware checks.
	TokenHashByID(id string) (string, error)
}
