package expertRepo

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

// MongoExpertRepo implements ExpertRepository using MongoDB.
type MongoExpertRepo struct {
	coll *mongo.Collection
}

// NewMongoExpertRepo creates a new ExpertRepository using MongoDB.
func NewMongoExpertRepo() ExpertRepository {
	repo := &MongoExpertRepo{coll: database.Collection("expertProfiles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoExpertRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "zoneIds", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an expert profile by its unique ID.
func (r *MongoExpertRepo) GetByID(id string) (*models.ExpertProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.ExpertProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch expert profile %s: %w", id, err)
	}
	return &profile, nil
}

// GetByUserID retrieves the expert profile belonging to a user account.
func (r *MongoExpertRepo) GetByUserID(userID string) (*models.ExpertProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.ExpertProfile
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch expert profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *MongoExpertRepo) listByStatus(status models.ExpertApprovalStatus) ([]models.ExpertProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s experts: %w", status, err)
	}
	defer cursor.Close(ctx)

	var profiles []models.ExpertProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode expert profiles: %w", err)
	}
	return profiles, nil
}

// ListApproved retrieves every APPROVED expert profile.
func (r *MongoExpertRepo) ListApproved() ([]models.ExpertProfile, error) {
	return r.listByStatus(models.ExpertApproved)
}

// ListPending retrieves profiles awaiting admin approval.
func (r *MongoExpertRepo) ListPending() ([]models.ExpertProfile, error) {
	return r.listByStatus(models.ExpertPending)
}

// Create inserts a new expert profile document.
func (r *MongoExpertRepo) Create(profile *models.ExpertProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create expert profile: %w", err)
	}
	return nil
}

// Patch applies the non-nil fields of upd and returns the updated profile.
func (r *MongoExpertRepo) Patch(id string, upd *models.ExpertProfileUpdate) (*models.ExpertProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.FullName != nil {
		set["fullName"] = *upd.FullName
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}
	if upd.ZoneIDs != nil {
		set["zoneIds"] = upd.ZoneIDs
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.OnlineStatus != nil {
		set["onlineStatus"] = *upd.OnlineStatus
	}
	if upd.IDProofURL != nil {
		set["idProofUrl"] = *upd.IDProofURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile models.ExpertProfile
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("expert profile %s not found", id)
		}
		return nil, fmt.Errorf("failed to update expert profile %s: %w", id, err)
	}
	return &profile, nil
}

// UpdateRating stores a recomputed rating average and job count.
func (r *MongoExpertRepo) UpdateRating(id string, rating float64, totalJobs int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":    rating,
		"totalJobs": totalJobs,
		"updatedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for expert %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("expert profile %s not found", id)
	}
	return nil
}

// Delete removes an expert profile document by its ID.
func (r *MongoExpertRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete expert profile %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("expert profile %s not found", id)
	}
	return nil
}
