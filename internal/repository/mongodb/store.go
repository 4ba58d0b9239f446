// Package mongodb implements the repository contracts on MongoDB for
// deployments where the development server must keep data across restarts.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ipa-agro/agromanager/internal/domain/models"
	"github.com/ipa-agro/agromanager/internal/repository"
)

const (
	seedProductionsColl = "seed_productions"
	farmersColl         = "farmers"
	countersColl        = "counters"
)

// Store owns the MongoDB connection shared by the per-family repositories.
type Store struct {
	client *mongo.Client
	dbName string
}

// NewStore connects to MongoDB and verifies the connection.
func NewStore(ctx context.Context, uri string, dbName string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{client: client, dbName: dbName}, nil
}

// Close closes the MongoDB connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// SeedProductions returns the seed-production repository.
func (s *Store) SeedProductions() *SeedProductionRepository {
	return &SeedProductionRepository{store: s}
}

// Farmers returns the farmer repository.
func (s *Store) Farmers() *FarmerRepository {
	return &FarmerRepository{store: s}
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// nextID atomically allocates the next numeric id for the named family.
func (s *Store) nextID(ctx context.Context, family string) (int, error) {
	var counter struct {
		Value int `bson:"value"`
	}

	err := s.collection(countersColl).FindOneAndUpdate(ctx,
		bson.M{"_id": family},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate id for %s: %w", family, err)
	}

	return counter.Value, nil
}

// SeedProductionRepository implements repository.SeedProductions on MongoDB.
type SeedProductionRepository struct {
	store *Store
}

// List returns all records ordered by id.
func (r *SeedProductionRepository) List(ctx context.Context) ([]models.SeedProduction, error) {
	cursor, err := r.store.collection(seedProductionsColl).Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list seed productions: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.SeedProduction{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode seed productions: %w", err)
	}
	return records, nil
}

// Get returns the record under id.
func (r *SeedProductionRepository) Get(ctx context.Context, id int) (models.SeedProduction, error) {
	var record models.SeedProduction
	err := r.store.collection(seedProductionsColl).FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.SeedProduction{}, fmt.Errorf("seed production %d: %w", id, repository.ErrNotFound)
		}
		return models.SeedProduction{}, fmt.Errorf("get seed production %d: %w", id, err)
	}
	return record, nil
}

// Create allocates an id and inserts the record.
func (r *SeedProductionRepository) Create(ctx context.Context, record models.SeedProduction) (models.SeedProduction, error) {
	id, err := r.store.nextID(ctx, seedProductionsColl)
	if err != nil {
		return models.SeedProduction{}, err
	}

	record.ID = &id
	if _, err := r.store.collection(seedProductionsColl).InsertOne(ctx, record); err != nil {
		return models.SeedProduction{}, fmt.Errorf("insert seed production: %w", err)
	}
	return record, nil
}

// Update replaces the record under id.
func (r *SeedProductionRepository) Update(ctx context.Context, id int, record models.SeedProduction) (models.SeedProduction, error) {
	record.ID = &id
	result, err := r.store.collection(seedProductionsColl).ReplaceOne(ctx, bson.M{"id": id}, record)
	if err != nil {
		return models.SeedProduction{}, fmt.Errorf("update seed production %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return models.SeedProduction{}, fmt.Errorf("seed production %d: %w", id, repository.ErrNotFound)
	}
	return record, nil
}

// Delete removes the record under id.
func (r *SeedProductionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.store.collection(seedProductionsColl).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete seed production %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("seed production %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

// FarmerRepository implements repository.Farmers on MongoDB.
type FarmerRepository struct {
	store *Store
}

// List returns all farmers ordered by tax identifier.
func (r *FarmerRepository) List(ctx context.Context) ([]models.Farmer, error) {
	cursor, err := r.store.collection(farmersColl).Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"taxId": 1}))
	if err != nil {
		return nil, fmt.Errorf("list farmers: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.Farmer{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode farmers: %w", err)
	}
	return records, nil
}

// Get returns the farmer under taxID.
func (r *FarmerRepository) Get(ctx context.Context, taxID string) (models.Farmer, error) {
	var record models.Farmer
	err := r.store.collection(farmersColl).FindOne(ctx, bson.M{"taxId": taxID}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Farmer{}, fmt.Errorf("farmer %s: %w", taxID, repository.ErrNotFound)
		}
		return models.Farmer{}, fmt.Errorf("get farmer %s: %w", taxID, err)
	}
	return record, nil
}

// Create inserts a new farmer; the tax identifier must be unused.
func (r *FarmerRepository) Create(ctx context.Context, record models.Farmer) (models.Farmer, error) {
	count, err := r.store.collection(farmersColl).CountDocuments(ctx, bson.M{"taxId": record.TaxID})
	if err != nil {
		return models.Farmer{}, fmt.Errorf("check farmer %s: %w", record.TaxID, err)
	}
	if count > 0 {
		return models.Farmer{}, fmt.Errorf("farmer %s: %w", record.TaxID, repository.ErrDuplicate)
	}

	if _, err := r.store.collection(farmersColl).InsertOne(ctx, record); err != nil {
		return models.Farmer{}, fmt.Errorf("insert farmer: %w", err)
	}
	return record, nil
}

// Update replaces the farmer under taxID.
func (r *FarmerRepository) Update(ctx context.Context, taxID string, record models.Farmer) (models.Farmer, error) {
	record.TaxID = taxID
	result, err := r.store.collection(farmersColl).ReplaceOne(ctx, bson.M{"taxId": taxID}, record)
	if err != nil {
		return models.Farmer{}, fmt.Errorf("update farmer %s: %w", taxID, err)
	}
	if result.MatchedCount == 0 {
		return models.Farmer{}, fmt.Errorf("farmer %s: %w", taxID, repository.ErrNotFound)
	}
	return record, nil
}

// Delete removes the farmer under taxID.
func (r *FarmerRepository) Delete(ctx context.Context, taxID string) error {
	result, err := r.store.collection(farmersColl).DeleteOne(ctx, bson.M{"taxId": taxID})
	if err != nil {
		return fmt.Errorf("delete farmer %s: %w", taxID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("farmer %s: %w", taxID, repository.ErrNotFound)
	}
	return nil
}
