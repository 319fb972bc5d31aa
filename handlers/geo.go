package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chrisdemonxxx/godrive/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var geoHTTPClient = &http.Client{Timeout: 5 * time.Second}

// GeoResult is a normalized geocoding hit.
type GeoResult struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type googleGeocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// GeocodeAddress resolves an address to coordinates, trying Google first
// and falling back to Nominatim when no API key is configured or Google
// returns nothing.
func GeocodeAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: address"})
		return
	}

	if apiKey := config.AppConfig.GoogleAPIKey; apiKey != "" {
		if result, err := geocodeGoogle(address, apiKey); err == nil {
			c.JSON(http.StatusOK, result)
			return
		} else {
			getLogger(c).Warn("Google geocoding failed, falling back", zap.Error(err))
		}
	}

	result, err := geocodeNominatim(address)
	if err != nil {
		getLogger(c).Error("Geocoding failed", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Address could not be resolved"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ReverseGeocode resolves coordinates to an address, with the same
// Google-then-Nominatim order as GeocodeAddress.
func ReverseGeocode(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid query parameters: lat, lng"})
		return
	}

	if apiKey := config.AppConfig.GoogleAPIKey; apiKey != "" {
		if result, err := reverseGeocodeGoogle(lat, lng, apiKey); err == nil {
			c.JSON(http.StatusOK, result)
			return
		} else {
			getLogger(c).Warn("Google reverse geocoding failed, falling back", zap.Error(err))
		}
	}

	result, err := reverseGeocodeNominatim(lat, lng)
	if err != nil {
		getLogger(c).Error("Reverse geocoding failed", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Coordinates could not be resolved"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func geocodeGoogle(address, apiKey string) (*GeoResult, error) {
	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(address), apiKey,
	)
	resp, err := geoHTTPClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("google geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode google response: %w", err)
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, fmt.Errorf("google returned status %s", decoded.Status)
	}

	first := decoded.Results[0]
	return &GeoResult{
		Address: first.FormattedAddress,
		Lat:     first.Geometry.Location.Lat,
		Lng:     first.Geometry.Location.Lng,
	}, nil
}

func reverseGeocodeGoogle(lat, lng float64, apiKey string) (*GeoResult, error) {
	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?latlng=%f,%f&key=%s",
		lat, lng, apiKey,
	)
	resp, err := geoHTTPClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("google reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode google response: %w", err)
	}
	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, fmt.Errorf("google returned status %s", decoded.Status)
	}

	return &GeoResult{
		Address: decoded.Results[0].FormattedAddress,
		Lat:     lat,
		Lng:     lng,
	}, nil
}

func reverseGeocodeNominatim(lat, lng float64) (*GeoResult, error) {
	endpoint := fmt.Sprintf(
		"https://nominatim.openstreetmap.org/reverse?lat=%f&lon=%f&format=json",
		lat, lng,
	)
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "godrive-server/1.0")

	resp, err := geoHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim reverse request failed: %w", err)
	}
	defer resp.Body.Close()

	var result nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if result.DisplayName == "" {
		return nil, fmt.Errorf("no address for coordinates")
	}

	return &GeoResult{
		Address: result.DisplayName,
		Lat:     lat,
		Lng:     lng,
	}, nil
}

func geocodeNominatim(address string) (*GeoResult, error) {
	endpoint := fmt.Sprintf(
		"https://nominatim.openstreetmap.org/search?q=%s&format=json&limit=1",
		url.QueryEscape(address),
	)
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "godrive-server/1.0")

	resp, err := geoHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results for address")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in response: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in response: %w", err)
	}

	return &GeoResult{
		Address: results[0].DisplayName,
		Lat:     lat,
		Lng:     lng,
	}, nil
}
