package stylistRepo

import (
	"bokaenkelt/models"
	"bokaenkelt/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// FallbackStylistRepo decorates a live repository with sample data for the
// read path. When a live read fails, browsing endpoints keep working off the
// samples. Writes and token lookups always go to the live repository and
// propagate their errors, so nothing can be "saved" against sample data.
type FallbackStylistRepo struct {
	Live StylistRepository
}

// NewFallbackStylistRepo wraps a live repository with sample-data reads.
func NewFallbackStylistRepo(live StylistRepository) StylistRepository {
	return &FallbackStylistRepo{Live: live}
}

func (r *FallbackStylistRepo) GetByID(id string) (*models.Stylist, error) {
	stylist, err := r.Live.GetByID(id)
	if err == nil {
		return stylist, nil
	}
	utils.GetLogger().Warn("live stylist read failed, serving sample data", zap.Error(err))
	for i := range sampleStylists {
		if sampleStylists[i].ID == id {
			s := sampleStylists[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *FallbackStylistRepo) GetByEmail(email string) (*models.Stylist, error) {
	// Credential lookups never fall back; serving a sample account here would
	// let logins succeed against fake data.
	return r.Live.GetByEmail(email)
}

func (r *FallbackStylistRepo) GetAllActive() ([]models.Stylist, error) {
	stylists, err := r.Live.GetAllActive()
	if err == nil {
		return stylists, nil
	}
	utils.GetLogger().Warn("live stylist listing failed, serving sample data", zap.Error(err))
	return append([]models.Stylist(nil), sampleStylists...), nil
}

func (r *FallbackStylistRepo) GetAll() ([]models.Stylist, error) {
	return r.Live.GetAll()
}

func (r *FallbackStylistRepo) Create(stylist *models.Stylist) error {
	return r.Live.Create(stylist)
}

func (r *FallbackStylistRepo) UpdateFields(id string, fields bson.M) (*models.Stylist, error) {
	return r.Live.UpdateFields(id, fields)
}

func (r *FallbackStylistRepo) Deactivate(id string) error {
	return r.Live.Deactivate(id)
}

func (r *FallbackStylistRepo) SetTokenHash(id, tokenHash string) error {
	return r.Live.SetTokenHash(id, tokenHash)
}

func (r *FallbackStylistRepo) TokenHashByID(id string) (string, error) {
	return r.Live.TokenHashByID(id)
}

var sampleStylists = []models.Stylist{
	{
		ID:          "sample-anna",
		Email:       "anna@bokaenkelt.se",
		Name:        "Anna Lindqvist",
		Role:        "stylist",
		Specialties: []string{"Klippning", "Färgning"},
		Bio:         "Frisör med 12 års erfarenhet i centrala Stockholm.",
		Experience:  12,
		Rating:      4.8,
		Reviews:     37,
		IsActive:    true,
		Services: []models.ServiceOffering{
			{Name: "Klippning", Price: "450 kr", Duration: "45 min", Description: "Klippning och styling"},
			{Name: "Färgning", Price: "1200 kr", Duration: "120 min", Description: "Helfärgning"},
		},
		Availability: models.Availability{
			Days:  []string{"Onsdag", "Torsdag", "Fredag", "Lördag"},
			Hours: models.WorkingHours{Start: "10:00", End: "18:00"},
		},
		Location: models.Location{Address: "Drottninggatan 12, Stockholm"},
	},
	{
		ID:          "sample-erik",
		Email:       "erik@bokaenkelt.se",
		Name:        "Erik Söderberg",
		Role:        "stylist",
		Specialties: []string{"Herrklippning", "Skäggvård"},
		Experience:  7,
		Rating:      4.5,
		Reviews:     21,
		IsActive:    true,
		Services: []models.ServiceOffering{
			{Name: "Herrklippning", Price: "350 kr", Duration: "30 min", Description: "Klippning med maskin och sax"},
		},
		Availability: models.Availability{
			Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			Hours: models.WorkingHours{Start: "09:00", End: "17:00"},
		},
		Location: models.Location{Address: "Storgatan 4, Göteborg"},
	},
}
