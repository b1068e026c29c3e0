package bookingRepo

import (
	"fmt"
	"time"

	"bokaenkelt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookedTimes aggregates the distinct start times of non-cancelled bookings
// for a stylist on a date, sorted ascending. This backs the client's
// disabled-slot display; it is a courtesy view, not the admission check.
func (r *MongoBookingRepo) BookedTimes(stylistID, date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"stylistId": stylistID,
			"date":      date,
			"status":    bson.M{"$ne": models.StatusCancelled},
		}}},
		{{Key: "$group", Value: bson.M{"_id": "$time"}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Time string `bson:"_id"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding aggregation result: %w", err)
	}

	times := make([]string, 0, len(results))
	for _, res := range results {
		times = append(times, res.Time)
	}
	return times, nil
}
