package stylist

import (
	"errors"
	"fmt"
	"time"

	stylistRepo "bokaenkelt/database/repository/stylist"
	"bokaenkelt/models"
	"bokaenkelt/services/booking"
	"bokaenkelt/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service-level errors, mapped to HTTP statuses by the handlers.
var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotFound            = errors.New("stylist not found")
	ErrInvalidAvailability = errors.New("invalid availability")
)

// DefaultStylistService implements StylistService over the stylist repository.
type DefaultStylistService struct {
	Repo stylistRepo.StylistRepository
}

// NewDefaultStylistService wires a stylist service.
func NewDefaultStylistService(repo stylistRepo.StylistRepository) *DefaultStylistService {
	return &DefaultStylistService{Repo: repo}
}

// Register creates a stylist account with default availability.
func (s *DefaultStylistService) Register(req RegisterRequest) (*models.Stylist, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing stylist: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	stylist := &models.Stylist{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         "stylist",
		Phone:        req.Phone,
		IsActive:     true,
		Availability: models.DefaultAvailability(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(stylist); err != nil {
		return nil, fmt.Errorf("failed to create stylist: %w", err)
	}

	utils.GetLogger().Info("stylist registered", zap.String("stylistID", stylist.ID))
	return stylist, nil
}

// Authenticate verifies credentials and issues a token. The token hash is
// stored on the account and cached so the auth middleware can check revocation.
func (s *DefaultStylistService) Authenticate(email, password string) (*AuthResult, error) {
	stylist, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to load stylist: %w", err)
	}
	if stylist == nil || !stylist.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stylist.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(stylist.ID, stylist.Email, "stylist", utils.AuthTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(stylist.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	utils.CacheAuthToken(stylist.ID, tokenHash)

	return &AuthResult{Token: token, Stylist: stylist}, nil
}

// GetByID retrieves one stylist profile.
func (s *DefaultStylistService) GetByID(id string) (*models.Stylist, error) {
	stylist, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load stylist: %w", err)
	}
	if stylist == nil {
		return nil, ErrNotFound
	}
	return stylist, nil
}

// ListActive retrieves the public list of active stylists.
func (s *DefaultStylistService) ListActive() ([]models.Stylist, error) {
	return s.Repo.GetAllActive()
}

// ListAll retrieves every stylist, active or not.
func (s *DefaultStylistService) ListAll() ([]models.Stylist, error) {
	return s.Repo.GetAll()
}

// UpdateProfile applies a partial profile update. Availability changes are
// validated so a stylist cannot configure a calendar the slot grid cannot
// serve.
func (s *DefaultStylistService) UpdateProfile(id string, update models.StylistUpdate) (*models.Stylist, error) {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Specialties != nil {
		fields["specialties"] = *update.Specialties
	}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}
	if update.Experience != nil {
		fields["experience"] = *update.Experience
	}
	if update.Services != nil {
		fields["services"] = *update.Services
	}
	if update.Availability != nil {
		if err := validateAvailability(*update.Availability); err != nil {
			return nil, err
		}
		fields["availability"] = *update.Availability
	}
	if update.ImageURL != nil {
		fields["imageUrl"] = *update.ImageURL
	}
	if update.Photos != nil {
		fields["photos"] = *update.Photos
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.Tabs != nil {
		fields["tabs"] = *update.Tabs
	}

	stylist, err := s.Repo.UpdateFields(id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update stylist: %w", err)
	}
	if stylist == nil {
		return nil, ErrNotFound
	}
	return stylist, nil
}

// Deactivate soft-deletes a stylist.
func (s *DefaultStylistService) Deactivate(id string) error {
	stylist, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to load stylist: %w", err)
	}
	if stylist == nil {
		return ErrNotFound
	}
	return s.Repo.Deactivate(id)
}

func validateAvailability(a models.Availability) error {
	if len(a.Days) == 0 {
		return fmt.Errorf("%w: at least one working day is required", ErrInvalidAvailability)
	}
	for _, day := range a.Days {
		if !booking.KnownWeekday(day) {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidAvailability, day)
		}
	}
	start, err := booking.ParseClock(a.Hours.Start)
	if err != nil {
		return fmt.Errorf("%w: start must be on the form HH:MM", ErrInvalidAvailability)
	}
	end, err := booking.ParseClock(a.Hours.End)
	if err != nil {
		return fmt.Errorf("%w: end must be on the form HH:MM", ErrInvalidAvailability)
	}
	if start > end {
		return fmt.Errorf("%w: start must not be after end", ErrInvalidAvailability)
	}
	return nil
}
