package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	categories *mongo.Collection
	zones      *mongo.Collection
	services   *mongo.Collection
}

// NewMongoCatalogRepo creates a new CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{
		categories: database.Collection("categories"),
		zones:      database.Collection("zones"),
		services:   database.Collection("services"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	for _, coll := range []*mongo.Collection{r.categories, r.zones, r.services} {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "id", Value: 1}}, Options: unique,
		})
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}
	_, err := r.services.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "categoryId", Value: 1}, {Key: "isActive", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListCategories retrieves every active category.
func (r *MongoCatalogRepo) ListCategories() ([]models.Category, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.categories.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return cats, nil
}

// GetCategory retrieves a category by its unique ID.
func (r *MongoCatalogRepo) GetCategory(id string) (*models.Category, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cat models.Category
	if err := r.categories.FindOne(ctx, bson.M{"id": id}).Decode(&cat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category %s: %w", id, err)
	}
	return &cat, nil
}

// ListZones retrieves every active zone.
func (r *MongoCatalogRepo) ListZones() ([]models.Zone, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.zones.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer cursor.Close(ctx)

	var zones []models.Zone
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, fmt.Errorf("failed to decode zones: %w", err)
	}
	return zones, nil
}

// GetZone retrieves a zone by its unique ID.
func (r *MongoCatalogRepo) GetZone(id string) (*models.Zone, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var zone models.Zone
	if err := r.zones.FindOne(ctx, bson.M{"id": id}).Decode(&zone); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch zone %s: %w", id, err)
	}
	return &zone, nil
}

// ListServices retrieves every active service.
func (r *MongoCatalogRepo) ListServices() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var svcs []models.Service
	if err := cursor.All(ctx, &svcs); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return svcs, nil
}

// ListServicesByCategory retrieves the active services under one category.
func (r *MongoCatalogRepo) ListServicesByCategory(categoryID string) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"categoryId": categoryID, "isActive": true}
	cursor, err := r.services.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for category %s: %w", categoryID, err)
	}
	defer cursor.Close(ctx)

	var svcs []models.Service
	if err := cursor.All(ctx, &svcs); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return svcs, nil
}

// GetService retrieves a service by its unique ID.
func (r *MongoCatalogRepo) GetService(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// CreateCategory inserts a new category document.
func (r *MongoCatalogRepo) CreateCategory(cat *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.categories.InsertOne(ctx, cat); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateZone inserts a new zone document.
func (r *MongoCatalogRepo) CreateZone(zone *models.Zone) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.zones.InsertOne(ctx, zone); err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// CreateService inserts a new service document.
func (r *MongoCatalogRepo) CreateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.services.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}
