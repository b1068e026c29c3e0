package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a booking. The partial unique index on (stylistId, date,
// time) turns a concurrent insert for the same exact slot into
// ErrDuplicateSlot instead of a double-booking.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID. Returns nil when not found.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetAll retrieves all bookings, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.find(bson.M{})
}

// GetByCustomer retrieves bookings made by a registered customer.
func (r *MongoBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	return r.find(bson.M{"customer.registeredId": customerID})
}

// GetByStylist retrieves all bookings for a stylist.
func (r *MongoBookingRepo) GetByStylist(stylistID string) ([]models.Booking, error) {
	return r.find(bson.M{"stylistId": stylistID})
}

// FindActiveByStylistAndDate retrieves the non-cancelled bookings for a
// stylist on a calendar date.
func (r *MongoBookingRepo) FindActiveByStylistAndDate(stylistID, date string) ([]models.Booking, error) {
	return r.find(bson.M{
		"stylistId": stylistID,
		"date":      date,
		"status":    bson.M{"$ne": models.StatusCancelled},
	})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// UpdateFields applies a partial update by ID and returns the updated booking.
func (r *MongoBookingRepo) UpdateFields(id string, fields bson.M) (*models.Booking, error) {
	return r.updateOne(bson.M{"id": id}, fields)
}

// UpdateFieldsOwned applies a partial update scoped to the owning customer.
func (r *MongoBookingRepo) UpdateFieldsOwned(id, customerID string, fields bson.M) (*models.Booking, error) {
	return r.updateOne(bson.M{"id": id, "customer.registeredId": customerID}, fields)
}

func (r *MongoBookingRepo) updateOne(filter, fields bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &updated, nil
}

// MarkReminderSent flags a booking's reminder as delivered.
func (r *MongoBookingRepo) MarkReminderSent(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"reminderSent": true}})
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent for booking %s: %w", id, err)
	}
	return nil
}
