package payoutRepo

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

// MongoPayoutRepo implements PayoutRepository using MongoDB.
type MongoPayoutRepo struct {
	coll *mongo.Collection
}

// NewMongoPayoutRepo creates a new instance of PayoutRepository using MongoDB.
func NewMongoPayoutRepo() PayoutRepository {
	repo := &MongoPayoutRepo{coll: database.Collection("host_payouts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create payout indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPayoutRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new payout batch.
func (r *MongoPayoutRepo) Create(payout *models.HostPayout) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	payout.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, payout); err != nil {
		return fmt.Errorf("failed to create payout: %w", err)
	}
	return nil
}

// GetByID retrieves a payout batch; returns nil when absent.
func (r *MongoPayoutRepo) GetByID(id string) (*models.HostPayout, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payout models.HostPayout
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payout); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payout %s: %w", id, err)
	}
	return &payout, nil
}

// UpdateSetDocument applies a partial $set update to a payout batch.
func (r *MongoPayoutRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update payout %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payout with id %s not found", id)
	}
	return nil
}

// ListByHost retrieves all payout batches for one host, newest first.
func (r *MongoPayoutRepo) ListByHost(hostID string) ([]models.HostPayout, error) {
	return r.list(bson.M{"host_id": hostID})
}

// ListByStatus retrieves all payout batches in the given state.
func (r *MongoPayoutRepo) ListByStatus(status models.PayoutStatus) ([]models.HostPayout, error) {
	return r.list(bson.M{"status": status})
}

func (r *MongoPayoutRepo) list(filter bson.M) ([]models.HostPayout, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payouts: %w", err)
	}
	defer cursor.Close(ctx)

	var payouts []models.HostPayout
	if err := cursor.All(ctx, &payouts); err != nil {
		return nil, fmt.Errorf("failed to decode payouts: %w", err)
	}
	return payouts, nil
}
