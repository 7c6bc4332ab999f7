// File: services/geocode/geocode.go
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"legalaid/config"
	"legalaid/utils"

	"go.uber.org/zap"
)

// Coordinates is a resolved forward-geocoding result.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder resolves a postal address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}

// nominatimResult mirrors the fields we need from a Nominatim search response.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// HTTPGeocoder queries a Nominatim-compatible endpoint and caches results
// keyed by normalized address.
type HTTPGeocoder struct {
	BaseURL string
	Client  *http.Client

	cache      map[string]*Coordinates
	cacheMutex sync.RWMutex
}

// NewGeocoder builds an HTTPGeocoder from AppConfig.
func NewGeocoder() *HTTPGeocoder {
	return &HTTPGeocoder{
		BaseURL: config.AppConfig.GeocodeBaseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
		cache:   make(map[string]*Coordinates),
	}
}

// Geocode resolves an address. A failed lookup returns a nil result with a
// nil error so callers can store the record without coordinates.
func (g *HTTPGeocoder) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	logger := utils.GetLogger()

	key := strings.ToLower(strings.TrimSpace(address))
	if key == "" {
		return nil, nil
	}

	// Check cache first.
	g.cacheMutex.RLock()
	if coords, exists := g.cache[key]; exists {
		g.cacheMutex.RUnlock()
		return coords, nil
	}
	g.cacheMutex.RUnlock()

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", g.BaseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		logger.Warn("Geocoding request failed", zap.String("address", address), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Geocoding API returned non-OK status", zap.String("address", address), zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		logger.Warn("Failed to decode geocoding response", zap.String("address", address), zap.Error(err))
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		logger.Warn("Geocoding API returned unparseable coordinates", zap.String("address", address))
		return nil, nil
	}

	coords := &Coordinates{Latitude: lat, Longitude: lon}

	g.cacheMutex.Lock()
	g.cache[key] = coords
	g.cacheMutex.Unlock()

	return coords, nil
}
