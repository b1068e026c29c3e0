package bookingRepo

import (
	"fmt"
	"time"

	"bokaenkelt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
//
// The partial unique index over (stylistId, date, time) holds only for
// non-cancelled bookings: it is the storage-level backstop against two
// concurrent admissions claiming the same exact slot, while cancelled
// bookings stay in the collection without blocking the slot.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "stylistId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "customer.registeredId", Value: 1}}},
		{
			Keys: bson.D{{Key: "stylistId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			// Partial filters cannot express $ne, so the active statuses are
			// enumerated instead.
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []models.BookingStatus{
						models.StatusPending,
						models.StatusConfirmed,
						models.StatusCompleted,
					}},
				}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
