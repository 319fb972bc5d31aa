package car

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/utils"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
	earthRadiusMeters  = 6371000
)

// Search runs the marketplace search: the repository narrows by the
// indexable predicates, then cars blocked for the requested dates are
// dropped, distance is computed when coordinates are given, and the result
// is paged.
func (s *DefaultCarService) Search(params models.CarSearchParams) (*models.CarSearchPage, error) {
	if params.Limit <= 0 {
		params.Limit = defaultSearchLimit
	}
	if params.Limit > maxSearchLimit {
		params.Limit = maxSearchLimit
	}
	if params.Page <= 0 {
		params.Page = 1
	}

	cars, err := s.Repo.Search(params)
	if err != nil {
		return nil, err
	}

	if params.PickupDate != nil && params.ReturnDate != nil {
		cars, err = s.dropUnavailable(cars, *params.PickupDate, *params.ReturnDate)
		if err != nil {
			return nil, err
		}
	}

	results := make([]models.CarSearchResult, 0, len(cars))
	for i := range cars {
		res := models.CarSearchResult{
			Car:          cars[i],
			PrimaryImage: cars[i].PrimaryImageURL(),
		}
		if params.Lat != 0 || params.Lng != 0 {
			res.DistanceMeters = haversineMeters(params.Lat, params.Lng, cars[i].LocationLat, cars[i].LocationLng)
		}
		if params.PickupDate != nil && params.ReturnDate != nil {
			res.TotalPrice = rentalBaseAmount(cars[i].DailyRate, *params.PickupDate, *params.ReturnDate)
		}
		results = append(results, res)
	}

	if params.RadiusMeters > 0 && (params.Lat != 0 || params.Lng != 0) {
		filtered := results[:0]
		for _, r := range results {
			if r.DistanceMeters <= params.RadiusMeters {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	if params.SortBy == "distance" && (params.Lat != 0 || params.Lng != 0) {
		sort.Slice(results, func(i, j int) bool {
			return results[i].DistanceMeters < results[j].DistanceMeters
		})
	}

	total := len(results)
	start := (params.Page - 1) * params.Limit
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return &models.CarSearchPage{
		Data:    results[start:end],
		Total:   total,
		Page:    params.Page,
		Limit:   params.Limit,
		HasMore: end < total,
	}, nil
}

// dropUnavailable removes cars with an availability block or an overlapping
// blocking booking inside the requested window.
func (s *DefaultCarService) dropUnavailable(cars []models.Car, pickup, ret time.Time) ([]models.Car, error) {
	if !ret.After(pickup) {
		return nil, fmt.Errorf("return must be after pickup")
	}

	dates := utils.EnumerateDates(pickup, ret)
	blocked, err := s.AvailabilityRepo.ListBlockedCarIDs(dates)
	if err != nil {
		return nil, err
	}
	conflicting, err := s.BookingRepo.ListConflictingCarIDs(pickup, ret)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(blocked)+len(conflicting))
	for _, id := range blocked {
		excluded[id] = struct{}{}
	}
	for _, id := range conflicting {
		excluded[id] = struct{}{}
	}

	kept := cars[:0]
	for _, c := range cars {
		if _, ok := excluded[c.ID]; !ok {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// rentalBaseAmount mirrors the quote formula's base component: billed days
// are whole days covering the ceil'd hour count.
func rentalBaseAmount(dailyRate int64, pickup, ret time.Time) int64 {
	hours := int(math.Ceil(ret.Sub(pickup).Hours()))
	if hours <= 0 {
		return 0
	}
	days := (hours + 23) / 24
	return int64(days) * dailyRate
}

func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}
