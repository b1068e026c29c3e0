package stylistRepo

import (
	"errors"
	"testing"

	"bokaenkelt/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

var errLiveDown = errors.New("connection refused")

// brokenRepo simulates a live repository whose reads fail.
type brokenRepo struct{}

func (brokenRepo) GetByID(id string) (*models.Stylist, error)       { return nil, errLiveDown }
func (brokenRepo) GetByEmail(email string) (*models.Stylist, error) { return nil, errLiveDown }
func (brokenRepo) GetAllActive() ([]models.Stylist, error)          { return nil, errLiveDown }
func (brokenRepo) GetAll() ([]models.Stylist, error)                { return nil, errLiveDown }
func (brokenRepo) Create(s *models.Stylist) error                   { return errLiveDown }
func (brokenRepo) UpdateFields(id string, fields bson.M) (*models.Stylist, error) {
	return nil, errLiveDown
}
func (brokenRepo) Deactivate(id string) error              { return errLiveDown }
func (brokenRepo) SetTokenHash(id, hash string) error      { return errLiveDown }
func (brokenRepo) TokenHashByID(id string) (string, error) { return "", errLiveDown }

// healthyRepo simulates a live repository that answers.
type healthyRepo struct{ brokenRepo }

func (healthyRepo) GetAllActive() ([]models.Stylist, error) {
	return []models.Stylist{{ID: "live-1", Name: "Live Stylist"}}, nil
}

func TestFallbackServesSamplesWhenLiveFails(t *testing.T) {
	repo := NewFallbackStylistRepo(brokenRepo{})

	stylists, err := repo.GetAllActive()
	require.NoError(t, err)
	require.NotEmpty(t, stylists)
	assert.Equal(t, "sample-anna", stylists[0].ID)

	found, err := repo.GetByID("sample-erik")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Erik Söderberg", found.Name)

	missing, err := repo.GetByID("no-such-stylist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFallbackPrefersLiveData(t *testing.T) {
	repo := NewFallbackStylistRepo(healthyRepo{})

	stylists, err := repo.GetAllActive()
	require.NoError(t, err)
	require.Len(t, stylists, 1)
	assert.Equal(t, "live-1", stylists[0].ID)
}

func TestFallbackNeverCoversWritesOrCredentials(t *testing.T) {
	repo := NewFallbackStylistRepo(brokenRepo{})

	_, err := repo.GetByEmail("anna@bokaenkelt.se")
	assert.ErrorIs(t, err, errLiveDown)

	assert.ErrorIs(t, repo.Create(&models.Stylist{ID: "new"}), errLiveDown)
	assert.ErrorIs(t, repo.SetTokenHash("sample-anna", "hash"), errLiveDown)

	_, err = repo.TokenHashByID("sample-anna")
	assert.ErrorIs(t, err, errLiveDown)
}
