package recordsRepo

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

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	repo := &MongoPaymentRepo{coll: database.Collection("payments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new payment document.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByBookingID retrieves the latest payment recorded for a booking.
func (r *MongoPaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}, opts).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment for booking %s: %w", bookingID, err)
	}
	return &payment, nil
}

// ListByCustomer retrieves a customer's payments, newest first.
func (r *MongoPaymentRepo) ListByCustomer(customerID string) ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// MongoRatingRepo implements RatingRepository using MongoDB.
type MongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo creates a new RatingRepository using MongoDB.
func NewMongoRatingRepo() RatingRepository {
	repo := &MongoRatingRepo{coll: database.Collection("ratings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoRatingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expertId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new rating document. The unique bookingId index
// rejects a second rating for the same booking.
func (r *MongoRatingRepo) Create(rating *models.Rating) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rating.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, rating); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("booking %s is already rated", rating.BookingID)
		}
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

// GetByBookingID retrieves the rating left for a booking.
func (r *MongoRatingRepo) GetByBookingID(bookingID string) (*models.Rating, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rating models.Rating
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&rating); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rating for booking %s: %w", bookingID, err)
	}
	return &rating, nil
}

// ListByExpert retrieves every rating left for an expert.
func (r *MongoRatingRepo) ListByExpert(expertID string) ([]models.Rating, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"expertId": expertID})
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for expert %s: %w", expertID, err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("failed to decode ratings: %w", err)
	}
	return ratings, nil
}
