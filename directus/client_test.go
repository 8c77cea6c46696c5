package directus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"innflow/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", nil, time.Minute, zap.NewNop())
}

func TestHotelByIDFetchesRecord(t *testing.T) {
	var seenPath, seenAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
		seenAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": models.HotelConfig{
				ID:   "hotel-1",
				Name: "Hotel Sol",
				Engine: models.EngineConfig{
					Provider: models.ProviderCloudbeds,
				},
				Rooms: []models.DirectusRoom{{ID: "d1", Name: "Deluxe"}},
			},
		})
	}))

	hotel, err := client.HotelByID(context.Background(), "hotel-1")
	if err != nil {
		t.Fatalf("HotelByID failed: %v", err)
	}
	if seenPath != "/items/hotels/hotel-1" {
		t.Fatalf("unexpected path: %s", seenPath)
	}
	if seenAuth != "Bearer test-token" {
		t.Fatalf("unexpected auth header: %s", seenAuth)
	}
	if hotel.Name != "Hotel Sol" || len(hotel.Rooms) != 1 {
		t.Fatalf("unexpected hotel record: %+v", hotel)
	}
}

func TestHotelByIDBackfillsID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{"name": "Hotel Sol"},
		})
	}))

	hotel, err := client.HotelByID(context.Background(), "hotel-1")
	if err != nil {
		t.Fatalf("HotelByID failed: %v", err)
	}
	if hotel.ID != "hotel-1" {
		t.Fatalf("expected backfilled ID, got %q", hotel.ID)
	}
}

func TestHotelByIDNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	if _, err := client.HotelByID(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing hotel")
	}
}

func TestHotelByIDRequiresID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an empty ID")
	}))

	if _, err := client.HotelByID(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty hotel ID")
	}
}
