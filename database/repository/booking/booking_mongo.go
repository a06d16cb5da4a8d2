package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"housemate/database"
	"housemate/models"
)

// ErrStatusConflict is returned by UpdateStatus when the booking is not
// in the expected status, typically because a concurrent transition won.
var ErrStatusConflict = fmt.Errorf("booking status conflict")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "expertId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListByCustomer retrieves a customer's bookings, newest first.
func (r *MongoBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.list(bson.M{"customerId": customerID})
}

// ListByExpert retrieves an expert's bookings, newest first, optionally
// restricted to the given statuses.
func (r *MongoBookingRepo) ListByExpert(expertID string, statuses ...models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"expertId": expertID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return r.list(filter)
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// Patch applies the non-nil fields of upd and returns the updated booking.
func (r *MongoBookingRepo) Patch(id string, upd *models.BookingUpdate) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.ExpertID != nil {
		set["expertId"] = *upd.ExpertID
	}
	if upd.AddressID != nil {
		set["addressId"] = *upd.AddressID
	}
	if upd.ScheduledStartTime != nil {
		set["scheduledStartTime"] = *upd.ScheduledStartTime
	}
	if upd.ActualStartTime != nil {
		set["actualStartTime"] = *upd.ActualStartTime
	}
	if upd.ActualEndTime != nil {
		set["actualEndTime"] = *upd.ActualEndTime
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if upd.OTP != nil {
		set["otp"] = *upd.OTP
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s not found", id)
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	return &booking, nil
}

// UpdateStatus transitions a booking from one status to another. The
// expected current status is part of the filter so only one of two
// racing transitions can match.
func (r *MongoBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s not in status %s: %w", id, from, ErrStatusConflict)
		}
		return nil, fmt.Errorf("failed to transition booking %s: %w", id, err)
	}
	return &booking, nil
}

// ListUnpaidOlderThan retrieves PENDING_PAYMENT bookings created before
// the cutoff.
func (r *MongoBookingRepo) ListUnpaidOlderThan(cutoff time.Time) ([]models.Booking, error) {
	return r.list(bson.M{
		"status":    models.BookingPendingPayment,
		"createdAt": bson.M{"$lt": cutoff},
	})
}
