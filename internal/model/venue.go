package model

// Location is a client-supplied approximate position
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Venue is a nearby restaurant suggestion from the place provider
type Venue struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     float64  `json:"rating"`
	PriceLevel int      `json:"priceLevel"`
	Cuisine    string   `json:"cuisine"`
	Distance   string   `json:"distance"`
	OpenNow    bool     `json:"openNow"`
	Location   Location `json:"location"`
}
