package admin

import (
	"errors"
	"fmt"

	adminRepo "bokaenkelt/database/repository/admin"
	"bokaenkelt/models"
	"bokaenkelt/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the email or password does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResult carries an issued token with its admin profile.
type AuthResult struct {
	Token string             `json:"token"`
	Admin *models.SuperAdmin `json:"admin"`
}

// AdminService defines super-admin authentication.
type AdminService interface {
	// Authenticate verifies credentials and issues a token.
	Authenticate(email, password string) (*AuthResult, error)
}

// DefaultAdminService implements AdminService over the admin repository.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}

// NewDefaultAdminService wires an admin service.
func NewDefaultAdminService(repo adminRepo.AdminRepository) *DefaultAdminService {
	return &DefaultAdminService{Repo: repo}
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultAdminService) Authenticate(email, password string) (*AuthResult, error) {
	admin, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, "superadmin", utils.AuthTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(admin.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	utils.CacheAuthToken(admin.ID, tokenHash)

	return &AuthResult{Token: token, Admin: admin}, nil
}
