package ratingRepo

import (
	"context"
	"fmt"
	"math"
	"time"

	"bokaenkelt/database"
	"bokaenkelt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRatingRepo implements RatingRepository using MongoDB. It holds both
// the rating and stylist collections because the aggregate recompute spans
// the two.
type MongoRatingRepo struct {
	ratingColl  *mongo.Collection
	stylistColl *mongo.Collection
}

// NewMongoRatingRepo creates a new instance of RatingRepository using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	repo := &MongoRatingRepo{
		ratingColl:  database.Collection("ratings"),
		stylistColl: database.Collection("stylists"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create rating indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRatingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stylistId", Value: 1}}},
	}

	_, err := r.ratingColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetAll retrieves all ratings.
func (r *MongoRatingRepo) GetAll() ([]models.Rating, error) {
	return r.find(bson.M{})
}

// GetByStylist retrieves all ratings for one stylist.
func (r *MongoRatingRepo) GetByStylist(stylistID string) ([]models.Rating, error) {
	return r.find(bson.M{"stylistId": stylistID})
}

func (r *MongoRatingRepo) find(filter bson.M) ([]models.Rating, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.ratingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	for cursor.Next(ctx) {
		var rating models.Rating
		if err := cursor.Decode(&rating); err != nil {
			return nil, fmt.Errorf("failed to decode rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

// CreateWithAggregate inserts the rating and updates the stylist's stored
// average and review count in a single transaction. The aggregate is
// recomputed from a session-scoped read that sees the insert, so two
// concurrent submissions cannot both write a pre-insert average.
func (r *MongoRatingRepo) CreateWithAggregate(rating *models.Rating) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	client := r.ratingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.ratingColl.InsertOne(sc, rating); err != nil {
			return fmt.Errorf("insert rating failed: %w", err)
		}

		average, count, err := r.aggregateForStylist(sc, rating.StylistID)
		if err != nil {
			return err
		}

		res, err := r.stylistColl.UpdateOne(sc,
			bson.M{"id": rating.StylistID},
			bson.M{"$set": bson.M{"rating": average, "reviews": count, "updatedAt": time.Now()}},
		)
		if err != nil {
			return fmt.Errorf("update stylist aggregates failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("stylist %s not found", rating.StylistID)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("rating transaction failed: %w", err)
	}

	return nil
}

// aggregateForStylist computes the mean (rounded to two decimals) and count
// of one stylist's ratings, reading through the given session context so the
// result includes writes made earlier in the same transaction.
func (r *MongoRatingRepo) aggregateForStylist(sc mongo.SessionContext, stylistID string) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"stylistId": stylistID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
			"count":   bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.ratingColl.Aggregate(sc, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("aggregate ratings failed: %w", err)
	}
	defer cursor.Close(sc)

	var agg struct {
		Average float64 `bson:"average"`
		Count   int64   `bson:"count"`
	}
	if cursor.Next(sc) {
		if err := cursor.Decode(&agg); err != nil {
			return 0, 0, fmt.Errorf("decode rating aggregate failed: %w", err)
		}
	}
	return math.Round(agg.Average*100) / 100, agg.Count, nil
}
