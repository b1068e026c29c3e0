package customer

import (
	"errors"
	"fmt"
	"time"

	customerRepo "bokaenkelt/database/repository/customer"
	"bokaenkelt/models"
	"bokaenkelt/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service-level errors, mapped to HTTP statuses by the handlers.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("customer not found")
)

// RegisterRequest is the inbound payload for creating a customer account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}

// ProfileUpdate carries the mutable customer profile fields.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// AuthResult carries an issued token with its customer profile.
type AuthResult struct {
	Token    string           `json:"token"`
	Customer *models.Customer `json:"customer"`
}

// CustomerService defines customer account operations.
type CustomerService interface {
	// Register creates a customer account.
	Register(req RegisterRequest) (*models.Customer, error)
	// Authenticate verifies credentials and issues a token.
	Authenticate(email, password string) (*AuthResult, error)
	// GetByID retrieves one customer profile.
	GetByID(id string) (*models.Customer, error)
	// ListAll retrieves every customer account (admin view).
	ListAll() ([]models.Customer, error)
	// UpdateProfile applies a partial profile update.
	UpdateProfile(id string, update ProfileUpdate) (*models.Customer, error)
}

// DefaultCustomerService implements CustomerService over the customer repository.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

// NewDefaultCustomerService wires a customer service.
func NewDefaultCustomerService(repo customerRepo.CustomerRepository) *DefaultCustomerService {
	return &DefaultCustomerService{Repo: repo}
}

// Register creates a customer account.
func (s *DefaultCustomerService) Register(req RegisterRequest) (*models.Customer, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	customer := &models.Customer{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         "customer",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	utils.GetLogger().Info("customer registered", zap.String("customerID", customer.ID))
	return customer, nil
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultCustomerService) Authenticate(email, password string) (*AuthResult, error) {
	customer, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if customer == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(customer.ID, customer.Email, "customer", utils.AuthTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(customer.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	utils.CacheAuthToken(customer.ID, tokenHash)

	return &AuthResult{Token: token, Customer: customer}, nil
}

// GetByID retrieves one customer profile.
func (s *DefaultCustomerService) GetByID(id string) (*models.Customer, error) {
	customer, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	return customer, nil
}

// ListAll retrieves every customer account.
func (s *DefaultCustomerService) ListAll() ([]models.Customer, error) {
	return s.Repo.GetAll()
}

// UpdateProfile applies a partial profile update.
func (s *DefaultCustomerService) UpdateProfile(id string, update ProfileUpdate) (*models.Customer, error) {
	customer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		customer.Name = *update.Name
	}
	if update.Phone != nil {
		customer.Phone = *update.Phone
	}
	customer.UpdatedAt = time.Now()
	if err := s.Repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}
