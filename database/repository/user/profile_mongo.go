package userRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"housemate/database"
	"housemate/models"
)

// MongoCustomerProfileRepo implements CustomerProfileRepository using MongoDB.
type MongoCustomerProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerProfileRepo creates a new CustomerProfileRepository using MongoDB.
func NewMongoCustomerProfileRepo() CustomerProfileRepository {
	repo := &MongoCustomerProfileRepo{coll: database.Collection("customerProfiles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCustomerProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUserID retrieves the customer profile belonging to a user account.
func (r *MongoCustomerProfileRepo) GetByUserID(userID string) (*models.CustomerProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.CustomerProfile
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Create inserts a new customer profile document.
func (r *MongoCustomerProfileRepo) Create(profile *models.CustomerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create customer profile: %w", err)
	}
	return nil
}

// Update modifies an existing customer profile document.
func (r *MongoCustomerProfileRepo) Update(profile *models.CustomerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profile.ID}, bson.M{"$set": profile})
	if err != nil {
		return fmt.Errorf("failed to update customer profile %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer profile %s not found", profile.ID)
	}
	return nil
}
