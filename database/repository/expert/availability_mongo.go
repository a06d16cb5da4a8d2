package expertRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"housemate/database"
	"housemate/models"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{coll: database.Collection("expertAvailability")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expertProfileId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Get retrieves the record for one expert on one date.
func (r *MongoAvailabilityRepo) Get(expertProfileID, date string) (*models.ExpertAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"expertProfileId": expertProfileID, "date": date}
	var av models.ExpertAvailability
	if err := r.coll.FindOne(ctx, filter).Decode(&av); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability for expert %s on %s: %w", expertProfileID, date, err)
	}
	return &av, nil
}

// ListByExpert retrieves every published date for an expert.
func (r *MongoAvailabilityRepo) ListByExpert(expertProfileID string) ([]models.ExpertAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"expertProfileId": expertProfileID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability for expert %s: %w", expertProfileID, err)
	}
	defer cursor.Close(ctx)

	var records []models.ExpertAvailability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode availability records: %w", err)
	}
	return records, nil
}

// ListByDate retrieves every expert's record for one date.
func (r *MongoAvailabilityRepo) ListByDate(date string) ([]models.ExpertAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to list availability for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var records []models.ExpertAvailability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode availability records: %w", err)
	}
	return records, nil
}

// Upsert replaces the slot set for (expert, date).
func (r *MongoAvailabilityRepo) Upsert(av *models.ExpertAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	av.UpdatedAt = time.Now()
	filter := bson.M{"expertProfileId": av.ExpertProfileID, "date": av.Date}
	update := bson.M{"$set": bson.M{
		"id":              av.ID,
		"expertProfileId": av.ExpertProfileID,
		"date":            av.Date,
		"timeSlots":       av.TimeSlots,
		"updatedAt":       av.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert availability for expert %s on %s: %w", av.ExpertProfileID, av.Date, err)
	}
	return nil
}

// RemoveSlot removes one slot from (expert, date).
func (r *MongoAvailabilityRepo) RemoveSlot(expertProfileID, date, slot string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"expertProfileId": expertProfileID, "date": date}
	update := bson.M{
		"$pull": bson.M{"timeSlots": slot},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to remove slot %q for expert %s on %s: %w", slot, expertProfileID, date, err)
	}
	return nil
}
