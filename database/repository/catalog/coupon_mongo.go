package catalogRepo

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"housemate/database"
	"housemate/models"
)

// MongoCouponRepo implements CouponRepository using MongoDB. Coupon
// codes are stored uppercase so lookups stay index-friendly.
type MongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo creates a new CouponRepository using MongoDB.
func NewMongoCouponRepo() CouponRepository {
	repo := &MongoCouponRepo{coll: database.Collection("coupons")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCouponRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByCode retrieves a coupon by code regardless of case.
func (r *MongoCouponRepo) GetByCode(code string) (*models.Coupon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var coupon models.Coupon
	filter := bson.M{"code": strings.ToUpper(strings.TrimSpace(code))}
	if err := r.coll.FindOne(ctx, filter).Decode(&coupon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch coupon %s: %w", code, err)
	}
	return &coupon, nil
}

// ListActive retrieves every active coupon.
func (r *MongoCouponRepo) ListActive() ([]models.Coupon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

// Create inserts a new coupon document with its code uppercased.
func (r *MongoCouponRepo) Create(coupon *models.Coupon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	if _, err := r.coll.InsertOne(ctx, coupon); err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// IncrementUsage bumps the coupon's used counter.
func (r *MongoCouponRepo) IncrementUsage(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"usedCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment usage for coupon %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon %s not found", id)
	}
	return nil
}
