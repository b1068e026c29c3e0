package models

import "time"

// ServiceOffering is one service a stylist offers. Price and duration are
// display strings ("450 kr", "45 min") kept as entered.
type ServiceOffering struct {
	Name        string `bson:"name" json:"name"`
	Price       string `bson:"price" json:"price"`
	Duration    string `bson:"duration" json:"duration"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// WorkingHours is a stylist's daily shift window. Start must not be after End;
// overnight shifts are not supported.
type WorkingHours struct {
	Start string `bson:"start" json:"start"` // "HH:MM"
	End   string `bson:"end" json:"end"`     // "HH:MM"
}

// Availability is the stylist's bookable calendar configuration. Days holds
// weekday names in the stylist's display language (English or Swedish).
type Availability struct {
	Days  []string     `bson:"days" json:"days"`
	Hours WorkingHours `bson:"hours" json:"hours"`
}

// Location is the stylist's salon address.
type Location struct {
	Address string `bson:"address" json:"address"`
	Map     string `bson:"map,omitempty" json:"map,omitempty"`
}

// Stylist is a stylist account with its public profile.
type Stylist struct {
	ID           string            `bson:"id" json:"id"`
	Email        string            `bson:"email" json:"email"`
	PasswordHash string            `bson:"passwordHash" json:"-"`
	Name         string            `bson:"name" json:"name"`
	Role         string            `bson:"role" json:"role"` // always "stylist"
	Phone        string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialties  []string          `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Bio          string            `bson:"bio,omitempty" json:"bio,omitempty"`
	Experience   int               `bson:"experience" json:"experience"`
	Rating       float64           `bson:"rating" json:"rating"`   // mean of all ratings, 2 decimals
	Reviews      int64             `bson:"reviews" json:"reviews"` // rating count
	IsActive     bool              `bson:"isActive" json:"isActive"`
	Services     []ServiceOffering `bson:"services,omitempty" json:"services,omitempty"`
	Availability Availability      `bson:"availability" json:"availability"`
	ImageURL     string            `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Photos       []string          `bson:"photos,omitempty" json:"photos,omitempty"`
	Location     Location          `bson:"location" json:"location"`
	HasPremium   bool              `bson:"hasPremium" json:"hasPremium"`
	Tabs         []string          `bson:"tabs,omitempty" json:"tabs,omitempty"`
	TokenHash    string            `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// DefaultAvailability is applied to new stylists until they configure their own.
func DefaultAvailability() Availability {
	return Availability{
		Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		Hours: WorkingHours{
			Start: "10:00",
			End:   "18:00",
		},
	}
}

// StylistUpdate carries the mutable profile fields for a partial update.
type StylistUpdate struct {
	Name         *string            `json:"name,omitempty"`
	Phone        *string            `json:"phone,omitempty"`
	Specialties  *[]string          `json:"specialties,omitempty"`
	Bio          *string            `json:"bio,omitempty"`
	Experience   *int               `json:"experience,omitempty"`
	Services     *[]ServiceOffering `json:"services,omitempty"`
	Availability *Availability      `json:"availability,omitempty"`
	ImageURL     *string            `json:"imageUrl,omitempty"`
	Photos       *[]string          `json:"photos,omitempty"`
	Location     *Location          `json:"location,omitempty"`
	Tabs         *[]string          `json:"tabs,omitempty"`
}
