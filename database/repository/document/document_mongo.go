package documentRepo

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

// MongoDocumentRepo implements DocumentRepository using MongoDB.
type MongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo creates a new instance of DocumentRepository using MongoDB.
func NewMongoDocumentRepo() DocumentRepository {
	repo := &MongoDocumentRepo{coll: database.Collection("user_documents")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create document indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDocumentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "verification_status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new document record.
func (r *MongoDocumentRepo) Create(doc *models.UserDocument) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetByID retrieves one document; returns nil when absent.
func (r *MongoDocumentRepo) GetByID(id string) (*models.UserDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.UserDocument
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch document %s: %w", id, err)
	}
	return &doc, nil
}

// ListByUser retrieves all documents uploaded by one user.
func (r *MongoDocumentRepo) ListByUser(userID string) ([]models.UserDocument, error) {
	return r.list(bson.M{"user_id": userID})
}

// ListPending retrieves all documents awaiting admin review.
func (r *MongoDocumentRepo) ListPending() ([]models.UserDocument, error) {
	return r.list(bson.M{"verification_status": models.VerificationPending})
}

func (r *MongoDocumentRepo) list(filter bson.M) ([]models.UserDocument, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.UserDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

// SetVerification records the outcome of an admin review.
func (r *MongoDocumentRepo) SetVerification(id string, status models.VerificationStatus, reviewerID, reason string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"verification_status": status,
		"rejection_reason":    reason,
		"verified_at":         now,
		"verified_by":         reviewerID,
		"updated_at":          now,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("document with id %s not found", id)
	}
	return nil
}
