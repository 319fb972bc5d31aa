package availabilityRepo

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

// ErrDateConflict is returned when inserting booked rows collides with an
// existing row for the same car and date.
var ErrDateConflict = fmt.Errorf("one or more dates are no longer available")

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	repo := &MongoAvailabilityRepo{coll: database.Collection("car_availability")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "car_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert writes one row per date, replacing any existing row for the same
// car and date. Used for host blocks and custom rates.
func (r *MongoAvailabilityRepo) Upsert(rows []models.CarAvailability) error {
	if len(rows) == 0 {
		return nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(rows))
	for i := range rows {
		row := rows[i]
		if row.CreatedAt.IsZero() {
			row.CreatedAt = time.Now()
		}
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"car_id": row.CarID, "date": row.Date}).
			SetReplacement(row).
			SetUpsert(true))
	}

	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to upsert availability rows: %w", err)
	}
	return nil
}

// DeleteHostBlocked removes host-blocked rows for the given dates. Rows
// held by bookings are left untouched.
func (r *MongoAvailabilityRepo) DeleteHostBlocked(carID string, dates []string) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"car_id": carID,
		"date":   bson.M{"$in": dates},
		"reason": bson.M{"$in": []string{models.AvailabilityBlockedByHost, models.AvailabilityMaintenance}},
	}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete blocked dates for car %s: %w", carID, err)
	}
	return result.DeletedCount, nil
}

// ListForCar retrieves all rows for a car within [from, to], ordered by date.
func (r *MongoAvailabilityRepo) ListForCar(carID, from, to string) ([]models.CarAvailability, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"car_id": carID,
		"date":   bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availability for car %s: %w", carID, err)
	}
	defer cursor.Close(ctx)

	var rows []models.CarAvailability
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode availability rows: %w", err)
	}
	return rows, nil
}

// ListUnavailable retrieves the rows marking any of the given dates as
// unavailable for a car.
func (r *MongoAvailabilityRepo) ListUnavailable(carID string, dates []string) ([]models.CarAvailability, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"car_id":       carID,
		"date":         bson.M{"$in": dates},
		"is_available": false,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to check availability for car %s: %w", carID, err)
	}
	defer cursor.Close(ctx)

	var rows []models.CarAvailability
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode availability rows: %w", err)
	}
	return rows, nil
}

// InsertBooked claims the given dates for a confirmed booking. The unique
// (car_id, date) index makes the claim race-safe: a duplicate key error
// means another booking got there first, surfaced as ErrDateConflict with
// any partial inserts rolled back.
func (r *MongoAvailabilityRepo) InsertBooked(carID string, dates []string, bookingID string) error {
	if len(dates) == 0 {
		return nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(dates))
	now := time.Now()
	for _, date := range dates {
		docs = append(docs, models.CarAvailability{
			ID:          fmt.Sprintf("%s:%s", bookingID, date),
			CarID:       carID,
			Date:        date,
			IsAvailable: false,
			Reason:      models.AvailabilityBooked,
			BookingID:   bookingID,
			CreatedAt:   now,
		})
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if _, delErr := r.DeleteBooked(bookingID); delErr != nil {
				fmt.Printf("failed to roll back partial availability claim for booking %s: %v\n", bookingID, delErr)
			}
			return ErrDateConflict
		}
		return fmt.Errorf("failed to claim dates for booking %s: %w", bookingID, err)
	}
	return nil
}

// DeleteBooked releases every row held by a booking.
func (r *MongoAvailabilityRepo) DeleteBooked(bookingID string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return 0, fmt.Errorf("failed to release dates for booking %s: %w", bookingID, err)
	}
	return result.DeletedCount, nil
}

// ListBlockedCarIDs returns the distinct car IDs that have at least one
// unavailable row on any of the given dates. Used to exclude cars from
// date-ranged search results.
func (r *MongoAvailabilityRepo) ListBlockedCarIDs(dates []string) ([]string, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"date":         bson.M{"$in": dates},
		"is_available": false,
	}
	values, err := r.coll.Distinct(ctx, "car_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked cars: %w", err)
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
