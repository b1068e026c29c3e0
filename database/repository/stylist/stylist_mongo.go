package stylistRepo

import (
	"context"
	"fmt"
	"time"

	"bokaenkelt/database"
	"bokaenkelt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStylistRepo implements StylistRepository using MongoDB.
type MongoStylistRepo struct {
	coll *mongo.Collection
}

// NewMongoStylistRepo creates a new instance of StylistRepository using MongoDB.
func NewMongoStylistRepo() StylistRepository {
	coll := database.Collection("stylists")
	repo := &MongoStylistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create stylist indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a stylist by its unique ID. Returns nil when not found.
func (r *MongoStylistRepo) GetByID(id string) (*models.Stylist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var stylist models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&stylist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch stylist with id %s: %w", id, err)
	}
	return &stylist, nil
}

// GetByEmail retrieves a stylist by email. Returns nil when not found.
func (r *MongoStylistRepo) GetByEmail(email string) (*models.Stylist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var stylist models.Stylist
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&stylist); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch stylist with email %s: %w", email, err)
	}
	return &stylist, nil
}

// GetAllActive retrieves all active stylists.
func (r *MongoStylistRepo) GetAllActive() ([]models.Stylist, error) {
	return r.find(bson.M{"isActive": true})
}

// GetAll retrieves all stylists.
func (r *MongoStylistRepo) GetAll() ([]models.Stylist, error) {
	return r.find(bson.M{})
}

func (r *MongoStylistRepo) find(filter bson.M) ([]models.Stylist, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stylists: %w", err)
	}
	defer cursor.Close(ctx)

	var stylists []models.Stylist
	for cursor.Next(ctx) {
		var s models.Stylist
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode stylist: %w", err)
		}
		stylists = append(stylists, s)
	}
	return stylists, nil
}

// Create inserts a new stylist record.
func (r *MongoStylistRepo) Create(stylist *models.Stylist) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, stylist); err != nil {
		return fmt.Errorf("failed to insert stylist: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update by ID and returns the updated stylist.
func (r *MongoStylistRepo) UpdateFields(id string, fields bson.M) (*models.Stylist, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Stylist
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update stylist: %w", err)
	}
	return &updated, nil
}

// Deactivate soft-deletes a stylist; the profile stays for existing bookings.
func (r *MongoStylistRepo) Deactivate(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"isActive": false, "updatedAt": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to deactivate stylist: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetTokenHash stores the hash of the stylist's current auth token.
func (r *MongoStylistRepo) SetTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"tokenHash": tokenHash}})
	if err != nil {
		return fmt.Errorf("failed to store token hash: %w", err)
	}
	return nil
}

// TokenHashByID returns the stored auth token hash.
func (r *MongoStylistRepo) TokenHashByID(id string) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc struct {
		TokenHash string `bson:"tokenHash"`
	}
	opts := options.FindOne().SetProjection(bson.M{"tokenHash": 1})
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&doc); err != nil {
		return "", fmt.Errorf("failed to fetch token hash for stylist %s: %w", id, err)
	}
	return doc.TokenHash, nil
}
