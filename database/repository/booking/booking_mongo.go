package bookingRepo

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

// blockingStatuses are the states in which a booking holds its date range
// against other guests.
var blockingStatuses = []models.BookingStatus{
	models.BookingPending,
	models.BookingConfirmed,
	models.BookingActive,
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "guest_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "host_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "car_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "payment_status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID; returns nil when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.getOne(bson.M{"id": id})
}

// GetByNumber retrieves a booking by its human-facing booking number.
func (r *MongoBookingRepo) GetByNumber(number string) (*models.Booking, error) {
	return r.getOne(bson.M{"booking_number": number})
}

func (r *MongoBookingRepo) getOne(filter bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// Update replaces an existing booking document.
func (r *MongoBookingRepo) Update(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": booking.ID}, bson.M{"$set": booking})
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", booking.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a booking document.
func (r *MongoBookingRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// ListByGuest retrieves a guest's bookings, optionally filtered by status.
func (r *MongoBookingRepo) ListByGuest(guestID string, status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"guest_id": guestID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// ListByHost retrieves a host's bookings, optionally filtered by status.
func (r *MongoBookingRepo) ListByHost(hostID string, status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"host_id": hostID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// ListByStatus retrieves bookings platform-wide, optionally filtered by
// status. Used by the admin dashboard.
func (r *MongoBookingRepo) ListByStatus(status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

// ListPendingVerification retrieves bookings whose guests have submitted a
// UPI transaction reference that an admin has not yet reviewed.
func (r *MongoBookingRepo) ListPendingVerification() ([]models.Booking, error) {
	return r.list(bson.M{
		"status":             models.BookingPending,
		"payment_status":     models.PaymentPending,
		"upi_transaction_id": bson.M{"$exists": true, "$ne": ""},
	})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// FindOverlapping retrieves blocking bookings for a car whose window
// intersects [pickup, ret).
func (r *MongoBookingRepo) FindOverlapping(carID string, pickup, ret time.Time) ([]models.Booking, error) {
	return r.list(bson.M{
		"car_id":          carID,
		"status":          bson.M{"$in": blockingStatuses},
		"pickup_datetime": bson.M{"$lt": ret},
		"return_datetime": bson.M{"$gt": pickup},
	})
}

// ListConflictingCarIDs returns the distinct car IDs with a blocking booking
// overlapping [pickup, ret). Used to exclude cars from date-ranged search.
func (r *MongoBookingRepo) ListConflictingCarIDs(pickup, ret time.Time) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":          bson.M{"$in": blockingStatuses},
		"pickup_datetime": bson.M{"$lt": ret},
		"return_datetime": bson.M{"$gt": pickup},
	}
	values, err := r.coll.Distinct(ctx, "car_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicting cars: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// ListCompletedForPayout retrieves a host's completed bookings that have not
// yet been settled into a payout batch.
func (r *MongoBookingRepo) ListCompletedForPayout(hostID string) ([]models.Booking, error) {
	return r.list(bson.M{
		"host_id": hostID,
		"status":  models.BookingCompleted,
		"$or": []bson.M{
			{"payout_id": bson.M{"$exists": false}},
			{"payout_id": ""},
		},
	})
}

// CountByStatus returns the number of bookings in the given state.
func (r *MongoBookingRepo) CountByStatus(status models.BookingStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// SumByPaymentStatus aggregates total_amount over bookings in the given
// payment state. Used for the admin stats dashboard.
func (r *MongoBookingRepo) SumByPaymentStatus(status models.PaymentStatus) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"payment_status": status}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$total_amount"}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate booking amounts: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode aggregate result: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
