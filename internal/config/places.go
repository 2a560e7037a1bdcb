package config

// PlacesConfig holds configuration for the place lookup provider
type PlacesConfig struct {
	APIKey       string `json:"-"`
	BaseURL      string `json:"baseUrl"`
	RadiusMeters int    `json:"radiusMeters"`
	TimeoutMS    int    `json:"timeoutMs"`
}

// DefaultPlacesConfig returns the default place lookup configuration
func DefaultPlacesConfig() *PlacesConfig {
	return &PlacesConfig{
		APIKey:       getEnvOrDefault("GOOGLE_MAPS_API_KEY", ""),
		BaseURL:      getEnvOrDefault("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		RadiusMeters: 5000,
		TimeoutMS:    8000,
	}
}

// IsEnabled returns true if the Places API is configured
func (c *PlacesConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// NearbySearchEndpoint returns the nearby search endpoint
func (c *PlacesConfig) NearbySearchEndpoint() string {
	return c.BaseURL + "/nearbysearch/json"
}
