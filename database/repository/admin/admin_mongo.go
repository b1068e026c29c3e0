package adminRepo

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

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates a new instance of AdminRepository using MongoDB.
func NewMongoAdminRepo() AdminRepository {
	return &MongoAdminRepo{coll: database.Collection("superadmins")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByEmail retrieves a super-admin by email. Returns nil when not found.
func (r *MongoAdminRepo) GetByEmail(email string) (*models.SuperAdmin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.SuperAdmin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with email %s: %w", email, err)
	}
	return &admin, nil
}

// GetByID retrieves a super-admin by ID. Returns nil when not found.
func (r *MongoAdminRepo) GetByID(id string) (*models.SuperAdmin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.SuperAdmin
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with id %s: %w", id, err)
	}
	return &admin, nil
}

// SetTokenHash stores the hash of the admin's current auth token.
func (r *MongoAdminRepo) SetTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"tokenHash": tokenHash}})
	if err != nil {
		return fmt.Errorf("failed to store token hash: %w", err)
	}
	return nil
}

// TokenHashByID returns the stored auth token hash.
func (r *MongoAdminRepo) TokenHashByID(id string) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc struct {
		TokenHash string `bson:"tokenHash"`
	}
	opts := options.FindOne().SetProjection(bson.M{"tokenHash": 1})
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&doc); err != nil {
		return "", fmt.Errorf("failed to fetch token hash for admin %s: %w", id, err)
	}
	return doc.TokenHash, nil
}
