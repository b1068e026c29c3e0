package models

import "time"

// Rating is a single customer review of a stylist.
type Rating struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"` // reviewer display name, "Anonymous" when absent
	StylistID string    `bson:"stylistId" json:"stylist"`
	Rating    float64   `bson:"rating" json:"rating"` // 0–5, fractional allowed
	Review    string    `bson:"review,omitempty" json:"review,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
