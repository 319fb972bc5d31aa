package carRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/database"
	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCarRepo implements CarRepository using MongoDB.
type MongoCarRepo struct {
	coll *mongo.Collection
}

// NewMongoCarRepo creates a new instance of CarRepository using MongoDB.
func NewMongoCarRepo() CarRepository {
	repo := &MongoCarRepo{coll: database.Collection("cars")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create car indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCarRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "registration_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "location_city", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new car document.
func (r *MongoCarRepo) Create(car *models.Car) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, car); err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of an existing car document.
func (r *MongoCarRepo) Update(car *models.Car) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	car.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": car.ID}, bson.M{"$set": car})
	if err != nil {
		return fmt.Errorf("failed to update car with id %s: %w", car.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", car.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a car document.
func (r *MongoCarRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update car with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", id)
	}
	return nil
}

// Increment applies a $inc update for counter fields like trips and earnings.
func (r *MongoCarRepo) Increment(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": fields})
	if err != nil {
		return fmt.Errorf("failed to increment counters for car %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a car by its unique ID; returns nil when absent.
func (r *MongoCarRepo) GetByID(id string) (*models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var car models.Car
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&car); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch car with id %s: %w", id, err)
	}
	return &car, nil
}

// GetByRegistration retrieves a car by registration number; returns nil when absent.
func (r *MongoCarRepo) GetByRegistration(registration string) (*models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var car models.Car
	if err := r.coll.FindOne(ctx, bson.M{"registration_number": registration}).Decode(&car); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch car with registration %s: %w", registration, err)
	}
	return &car, nil
}

// ListByHost retrieves all cars owned by one host, newest first.
func (r *MongoCarRepo) ListByHost(hostID string) ([]models.Car, error) {
	return r.list(bson.M{"host_id": hostID})
}

// ListByStatus retrieves all cars in the given lifecycle state.
func (r *MongoCarRepo) ListByStatus(status models.CarStatus) ([]models.Car, error) {
	return r.list(bson.M{"status": status})
}

func (r *MongoCarRepo) list(filter bson.M) ([]models.Car, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode cars: %w", err)
	}
	return cars, nil
}

// CountByStatus returns the number of cars in the given state.
func (r *MongoCarRepo) CountByStatus(status models.CarStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return n, nil
}

// Count returns the total number of car documents.
func (r *MongoCarRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cars: %w", err)
	}
	return n, nil
}
