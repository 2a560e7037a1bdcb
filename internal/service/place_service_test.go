package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"whatshouldweeat/internal/config"
	"whatshouldweeat/internal/model"
)

func placesConfigFor(serverURL string) *config.PlacesConfig {
	return &config.PlacesConfig{
		APIKey:       "test-key",
		BaseURL:      serverURL,
		RadiusMeters: 5000,
		TimeoutMS:    2000,
	}
}

var testLoc = model.Location{Latitude: 37.7749, Longitude: -122.4194}

func TestFindVenuesParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("keyword") != "thai curry" {
			t.Errorf("keyword = %q", q.Get("keyword"))
		}
		if q.Get("type") != "restaurant" {
			t.Errorf("type = %q", q.Get("type"))
		}
		if q.Get("maxprice") != "2" {
			t.Errorf("maxprice = %q", q.Get("maxprice"))
		}
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [
				{
					"name": "Thai Palace",
					"vicinity": "123 Main St",
					"rating": 4.6,
					"price_level": 2,
					"geometry": {"location": {"lat": 37.78, "lng": -122.42}},
					"opening_hours": {"open_now": true}
				},
				{
					"name": "Curry Corner",
					"vicinity": "456 Oak Ave",
					"geometry": {"location": {"lat": 37.77, "lng": -122.41}}
				}
			]
		}`)
	}))
	defer srv.Close()

	svc := NewPlaceServiceWith(placesConfigFor(srv.URL))
	venues, err := svc.FindVenues(context.Background(), "thai curry", testLoc, 2)
	if err != nil {
		t.Fatalf("FindVenues: %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("got %d venues, want 2", len(venues))
	}

	first := venues[0]
	if first.Name != "Thai Palace" || first.Address != "123 Main St" {
		t.Errorf("first venue = %+v", first)
	}
	if first.Rating != 4.6 || first.PriceLevel != 2 || !first.OpenNow {
		t.Errorf("first venue fields = %+v", first)
	}

	// Missing rating and price default, absent hours count as open
	second := venues[1]
	if second.Rating != 4.0 || second.PriceLevel != 2 || !second.OpenNow {
		t.Errorf("second venue defaults = %+v", second)
	}
}

func TestFindVenuesCapsAtFive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK","results":[`)
		for i := 0; i < 8; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"name":"Place %d","vicinity":"addr","geometry":{"location":{"lat":37.78,"lng":-122.42}}}`, i)
		}
		fmt.Fprint(w, `]}`)
	}))
	defer srv.Close()

	svc := NewPlaceServiceWith(placesConfigFor(srv.URL))
	venues, err := svc.FindVenues(context.Background(), "pizza", testLoc, 0)
	if err != nil {
		t.Fatalf("FindVenues: %v", err)
	}
	if len(venues) != 5 {
		t.Fatalf("got %d venues, want 5", len(venues))
	}
}

func TestFindVenuesDisabledReturnsNothing(t *testing.T) {
	svc := NewPlaceServiceWith(&config.PlacesConfig{BaseURL: "http://127.0.0.1:1", TimeoutMS: 100})

	venues, err := svc.FindVenues(context.Background(), "pizza", testLoc, 0)
	if err != nil || venues != nil {
		t.Fatalf("disabled lookup = (%v, %v), want (nil, nil)", venues, err)
	}

	venue, err := svc.FindVenue(context.Background(), "pizza", testLoc, 0)
	if err != nil || venue != nil {
		t.Fatalf("disabled FindVenue = (%v, %v), want (nil, nil)", venue, err)
	}
}

func TestFindVenuesFailureDegradesToFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"http error",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			"api error status",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"status":"REQUEST_DENIED","results":[]}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			svc := NewPlaceServiceWith(placesConfigFor(srv.URL))
			venues, err := svc.FindVenues(context.Background(), "ramen", testLoc, 0)
			if err != nil {
				t.Fatalf("FindVenues: %v", err)
			}
			if len(venues) != 1 || venues[0].Name != "Local Favorite" {
				t.Fatalf("expected the generic fallback venue, got %+v", venues)
			}
			if venues[0].Cuisine != "ramen" {
				t.Errorf("fallback cuisine = %q", venues[0].Cuisine)
			}
		})
	}
}

func TestFindVenuesZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	}))
	defer srv.Close()

	svc := NewPlaceServiceWith(placesConfigFor(srv.URL))
	venues, err := svc.FindVenues(context.Background(), "gelato", testLoc, 0)
	if err != nil {
		t.Fatalf("FindVenues: %v", err)
	}
	if len(venues) != 0 {
		t.Fatalf("ZERO_RESULTS should yield no venues, got %+v", venues)
	}
}
