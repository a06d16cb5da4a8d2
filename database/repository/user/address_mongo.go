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

// MongoAddressRepo implements AddressRepository using MongoDB.
type MongoAddressRepo struct {
	coll *mongo.Collection
}

// NewMongoAddressRepo creates a new AddressRepository using MongoDB.
func NewMongoAddressRepo() AddressRepository {
	repo := &MongoAddressRepo{coll: database.Collection("addresses")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAddressRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an address by its unique ID.
func (r *MongoAddressRepo) GetByID(id string) (*models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addr models.Address
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&addr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch address %s: %w", id, err)
	}
	return &addr, nil
}

// ListByCustomer retrieves all addresses saved by a customer.
func (r *MongoAddressRepo) ListByCustomer(customerID string) ([]models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var addrs []models.Address
	if err := cursor.All(ctx, &addrs); err != nil {
		return nil, fmt.Errorf("failed to decode addresses: %w", err)
	}
	return addrs, nil
}

// Create inserts a new address document.
func (r *MongoAddressRepo) Create(addr *models.Address) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, addr); err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Patch applies the non-nil fields of upd to the address and returns
// the updated document.
func (r *MongoAddressRepo) Patch(id string, upd *models.AddressUpdate) (*models.Address, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{}
	if upd.Label != nil {
		set["label"] = *upd.Label
	}
	if upd.Line1 != nil {
		set["line1"] = *upd.Line1
	}
	if upd.Line2 != nil {
		set["line2"] = *upd.Line2
	}
	if upd.City != nil {
		set["city"] = *upd.City
	}
	if upd.State != nil {
		set["state"] = *upd.State
	}
	if upd.PostalCode != nil {
		set["postalCode"] = *upd.PostalCode
	}
	if upd.IsDefault != nil {
		set["isDefault"] = *upd.IsDefault
	}
	if len(set) == 0 {
		return r.GetByID(id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var addr models.Address
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&addr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("address %s not found", id)
		}
		return nil, fmt.Errorf("failed to update address %s: %w", id, err)
	}
	return &addr, nil
}

// Delete removes an address document by its ID.
func (r *MongoAddressRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete address %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("address %s not found", id)
	}
	return nil
}

// SetDefault marks one address as the customer's default and clears the
// flag on the rest.
func (r *MongoAddressRepo) SetDefault(customerID, addressID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateMany(ctx,
		bson.M{"customerId": customerID},
		bson.M{"$set": bson.M{"isDefault": false}})
	if err != nil {
		return fmt.Errorf("failed to clear default addresses for customer %s: %w", customerID, err)
	}

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": addressID, "customerId": customerID},
		bson.M{"$set": bson.M{"isDefault": true}})
	if err != nil {
		return fmt.Errorf("failed to set default address %s: %w", addressID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("address %s not found for customer %s", addressID, customerID)
	}
	return nil
}
