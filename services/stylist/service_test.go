package stylist

import (
	"testing"

	"bokaenkelt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeStylistRepo struct {
	stylists map[string]*models.Stylist
}

func newFakeRepo() *fakeStylistRepo {
	return &fakeStylistRepo{stylists: map[string]*models.Stylist{}}
}

func (f *fakeStylistRepo) GetByID(id string) (*models.Stylist, error) { return f.stylists[id], nil }
func (f *fakeStylistRepo) GetByEmail(email string) (*models.Stylist, error) {
	for _, s := range f.stylists {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeStylistRepo) GetAllActive() ([]models.Stylist, error) { return nil, nil }
func (f *fakeStylistRepo) GetAll() ([]models.Stylist, error)       { return nil, nil }
func (f *fakeStylistRepo) Create(s *models.Stylist) error {
	f.stylists[s.ID] = s
	return nil
}
func (f *fakeStylistRepo) UpdateFields(id string, fields bson.M) (*models.Stylist, error) {
	s, ok := f.stylists[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["availability"].(models.Availability); ok {
		s.Availability = v
	}
	if v, ok := fields["name"].(string); ok {
		s.Name = v
	}
	return s, nil
}
func (f *fakeStylistRepo) Deactivate(id string) error {
	if s, ok := f.stylists[id]; ok {
		s.IsActive = false
	}
	return nil
}
func (f *fakeStylistRepo) SetTokenHash(id, hash string) error      { return nil }
func (f *fakeStylistRepo) TokenHashByID(id string) (string, error) { return "", nil }

func TestRegister(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDefaultStylistService(repo)

	created, err := svc.Register(RegisterRequest{
		Email:    "anna@example.com",
		Password: "hemligt-losenord",
		Name:     "Anna Lindqvist",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "stylist", created.Role)
	assert.True(t, created.IsActive)
	assert.Equal(t, models.DefaultAvailability(), created.Availability)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hemligt-losenord")))

	_, err = svc.Register(RegisterRequest{
		Email:    "anna@example.com",
		Password: "annat-losenord",
		Name:     "Anna L",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateProfileAvailability(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDefaultStylistService(repo)

	created, err := svc.Register(RegisterRequest{
		Email:    "anna@example.com",
		Password: "hemligt-losenord",
		Name:     "Anna Lindqvist",
	})
	require.NoError(t, err)

	t.Run("valid availability is applied", func(t *testing.T) {
		availability := models.Availability{
			Days:  []string{"Tisdag", "Onsdag", "Torsdag"},
			Hours: models.WorkingHours{Start: "09:00", End: "17:00"},
		}
		updated, err := svc.UpdateProfile(created.ID, models.StylistUpdate{Availability: &availability})
		require.NoError(t, err)
		assert.Equal(t, availability, updated.Availability)
	})

	t.Run("unknown weekday is rejected", func(t *testing.T) {
		availability := models.Availability{
			Days:  []string{"Funday"},
			Hours: models.WorkingHours{Start: "09:00", End: "17:00"},
		}
		_, err := svc.UpdateProfile(created.ID, models.StylistUpdate{Availability: &availability})
		assert.ErrorIs(t, err, ErrInvalidAvailability)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		availability := models.Availability{
			Days:  []string{"Monday"},
			Hours: models.WorkingHours{Start: "18:00", End: "10:00"},
		}
		_, err := svc.UpdateProfile(created.ID, models.StylistUpdate{Availability: &availability})
		assert.ErrorIs(t, err, ErrInvalidAvailability)
	})

	t.Run("empty day list is rejected", func(t *testing.T) {
		availability := models.Availability{
			Hours: models.WorkingHours{Start: "09:00", End: "17:00"},
		}
		_, err := svc.UpdateProfile(created.ID, models.StylistUpdate{Availability: &availability})
		assert.ErrorIs(t, err, ErrInvalidAvailability)
	})

	t.Run("unknown stylist is not found", func(t *testing.T) {
		name := "Ny"
		_, err := svc.UpdateProfile("missing", models.StylistUpdate{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeactivate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDefaultStylistService(repo)

	created, err := svc.Register(RegisterRequest{
		Email:    "anna@example.com",
		Password: "hemligt-losenord",
		Name:     "Anna Lindqvist",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(created.ID))
	assert.False(t, repo.stylists[created.ID].IsActive)

	assert.ErrorIs(t, svc.Deactivate("missing"), ErrNotFound)
}
