package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"whatshouldweeat/internal/config"
	"whatshouldweeat/internal/model"
)

// PlaceService finds nearby restaurants for a recommended cuisine via
// the Google Places API. It is consumed only after an outcome has been
// scored; no key means no venue, and a failed call returns a generic
// fallback venue rather than an error.
type PlaceService struct {
	config *config.PlacesConfig
	client *http.Client
}

// NewPlaceService creates a new place service
func NewPlaceService() *PlaceService {
	cfg := config.DefaultPlacesConfig()
	return &PlaceService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// NewPlaceServiceWith allows tests to point the service at a fake API
func NewPlaceServiceWith(cfg *config.PlacesConfig) *PlaceService {
	return &PlaceService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// FindVenues returns up to five venues matching the cuisine near the
// given location. maxPrice of 0 means no price filter.
func (s *PlaceService) FindVenues(ctx context.Context, cuisine string, loc model.Location, maxPrice int) ([]model.Venue, error) {
	if !s.config.IsEnabled() {
		return nil, nil
	}

	venues, err := s.nearbySearch(ctx, cuisine, loc, maxPrice)
	if err != nil {
		// Degrade to a single generic suggestion
		return []model.Venue{s.fallbackVenue(cuisine, loc)}, nil
	}
	return venues, nil
}

// FindVenue returns the single best venue for the cuisine, or nil when
// the provider is unconfigured or nothing matches
func (s *PlaceService) FindVenue(ctx context.Context, cuisine string, loc model.Location, maxPrice int) (*model.Venue, error) {
	venues, err := s.FindVenues(ctx, cuisine, loc, maxPrice)
	if err != nil || len(venues) == 0 {
		return nil, err
	}
	return &venues[0], nil
}

func (s *PlaceService) nearbySearch(ctx context.Context, cuisine string, loc model.Location, maxPrice int) ([]model.Venue, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude))
	params.Set("radius", fmt.Sprintf("%d", s.config.RadiusMeters))
	params.Set("type", "restaurant")
	params.Set("keyword", cuisine)
	params.Set("key", s.config.APIKey)
	if maxPrice > 0 {
		params.Set("maxprice", fmt.Sprintf("%d", maxPrice))
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.config.NearbySearchEndpoint()+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places returned status %d", resp.StatusCode)
	}

	var placesResp struct {
		Results []struct {
			Name     string  `json:"name"`
			Vicinity string  `json:"vicinity"`
			Rating   float64 `json:"rating"`
			Price    int     `json:"price_level"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
			OpeningHours *struct {
				OpenNow bool `json:"open_now"`
			} `json:"opening_hours"`
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &placesResp); err != nil {
		return nil, err
	}
	if placesResp.Status != "OK" && placesResp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places returned status %s", placesResp.Status)
	}

	limit := 5
	if len(placesResp.Results) < limit {
		limit = len(placesResp.Results)
	}

	venues := make([]model.Venue, 0, limit)
	for _, place := range placesResp.Results[:limit] {
		rating := place.Rating
		if rating == 0 {
			rating = 4.0
		}
		price := place.Price
		if price == 0 {
			price = 2
		}
		venues = append(venues, model.Venue{
			Name:       place.Name,
			Address:    place.Vicinity,
			Rating:     rating,
			PriceLevel: price,
			Cuisine:    cuisine,
			Distance:   formatDistance(loc, place.Geometry.Location.Lat, place.Geometry.Location.Lng),
			OpenNow:    place.OpeningHours == nil || place.OpeningHours.OpenNow,
			Location: model.Location{
				Latitude:  place.Geometry.Location.Lat,
				Longitude: place.Geometry.Location.Lng,
			},
		})
	}
	return venues, nil
}

func (s *PlaceService) fallbackVenue(cuisine string, loc model.Location) model.Venue {
	return model.Venue{
		Name:       "Local Favorite",
		Address:    "Nearby location",
		Rating:     4.2,
		PriceLevel: 2,
		Cuisine:    cuisine,
		Distance:   "0.5 miles",
		OpenNow:    true,
		Location:   loc,
	}
}

// formatDistance computes the haversine distance in miles
func formatDistance(from model.Location, lat, lng float64) string {
	const earthRadiusMiles = 3959

	dLat := (lat - from.Latitude) * math.Pi / 180
	dLng := (lng - from.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Latitude*math.Pi/180)*math.Cos(lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return fmt.Sprintf("%.1f miles", earthRadiusMiles*c)
}
