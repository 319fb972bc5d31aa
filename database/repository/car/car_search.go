package carRepo

import (
	"fmt"
	"time"

	"github.com/chrisdemonxxx/godrive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFetchCap bounds how many candidates a single search pulls from the
// database before the service applies date/distance filtering and paging.
const searchFetchCap = 500

// Search returns active cars matching the equality/range predicates in
// params, pre-sorted where the sort maps onto an indexed field. Date-range
// and distance filtering happen in the service layer.
func (r *MongoCarRepo) Search(params models.CarSearchParams) ([]models.Car, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"status": models.CarActive}
	if params.City != "" {
		filter["location_city"] = params.City
	}
	if params.Transmission != "" {
		filter["transmission"] = params.Transmission
	}
	if params.FuelType != "" {
		filter["fuel_type"] = params.FuelType
	}
	if params.MinSeats > 0 || params.MaxSeats > 0 {
		seats := bson.M{}
		if params.MinSeats > 0 {
			seats["$gte"] = params.MinSeats
		}
		if params.MaxSeats > 0 {
			seats["$lte"] = params.MaxSeats
		}
		filter["seats"] = seats
	}
	if params.MinPrice > 0 || params.MaxPrice > 0 {
		price := bson.M{}
		if params.MinPrice > 0 {
			price["$gte"] = params.MinPrice
		}
		if params.MaxPrice > 0 {
			price["$lte"] = params.MaxPrice
		}
		filter["daily_rate"] = price
	}
	if params.InstantBooking != nil {
		filter["instant_booking"] = *params.InstantBooking
	}
	if len(params.Features) > 0 {
		filter["features"] = bson.M{"$all": params.Features}
	}

	opts := options.Find().SetLimit(searchFetchCap).SetSort(searchSort(params.SortBy))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return cars, nil
}

func searchSort(sortBy string) bson.D {
	switch sortBy {
	case "price_asc":
		return bson.D{{Key: "daily_rate", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "daily_rate", Value: -1}}
	case "rating":
		return bson.D{{Key: "average_rating", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
