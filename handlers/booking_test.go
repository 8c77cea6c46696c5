package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innflow/models"
	"innflow/services/booking"
	"innflow/services/engine"
)

// stubEngine serves canned data so handler tests never touch a provider.
type stubEngine struct {
	features []string
	avail    []models.RoomAvailability
	resp     *models.BookingResponse
}

func (s *stubEngine) Initialize(ctx context.Context, cfg models.EngineConfig) error { return nil }

func (s *stubEngine) CheckAvailability(ctx context.Context, query models.RateQuery) ([]models.RoomAvailability, error) {
	return s.avail, nil
}

func (s *stubEngine) GetRates(ctx context.Context, query models.RateQuery) ([]models.RoomRate, error) {
	return nil, nil
}

func (s *stubEngine) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	return s.resp, nil
}

func (s *stubEngine) GetBooking(ctx context.Context, bookingID string) (*models.BookingDetails, error) {
	return &models.BookingDetails{BookingID: bookingID}, nil
}

func (s *stubEngine) CancelBooking(ctx context.Context, bookingID, reason string) error { return nil }

func (s *stubEngine) ModifyBooking(ctx context.Context, bookingID string, changes models.BookingChanges) (*models.BookingDetails, error) {
	return &models.BookingDetails{BookingID: bookingID}, nil
}

func (s *stubEngine) ValidateConfig(cfg models.EngineConfig) bool { return true }

func (s *stubEngine) SupportedFeatures() []string { return s.features }

func (s *stubEngine) ProviderRooms() []models.ProviderRoom { return nil }

func (s *stubEngine) GetPropertyInfo(ctx context.Context) (*models.PropertyInfo, error) {
	return &models.PropertyInfo{}, nil
}

func (s *stubEngine) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return nil, nil
}

func (s *stubEngine) GetRatePlans(ctx context.Context) ([]models.RatePlan, error) {
	return nil, nil
}

func newTestRouter(t *testing.T, eng engine.BookingEngine, hotel models.HotelConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := engine.NewFactory(zap.NewNop())
	f.Register(models.ProviderCloudbeds, func(logger *zap.Logger) engine.BookingEngine {
		return eng
	})
	service := booking.NewService(f, zap.NewNop())
	if err := service.InitializeForHotel(context.Background(), hotel); err != nil {
		t.Fatalf("InitializeForHotel failed: %v", err)
	}

	h := NewBookingHandler(service, nil, zap.NewNop())
	r := gin.New()
	api := r.Group("/api/booking/:hotelID")
	api.POST("/availability", h.CheckAvailability)
	api.POST("/reservations", h.CreateBooking)
	api.GET("/booking-url", h.BookingURL)
	api.GET("/features", h.Features)
	return r
}

func apiHotel() models.HotelConfig {
	return models.HotelConfig{
		ID:   "hotel-1",
		Name: "Test Hotel",
		Engine: models.EngineConfig{
			Provider: models.ProviderCloudbeds,
			Credentials: models.EngineCredentials{
				PropertyID: "prop-1", APIKey: "key",
			},
		},
	}
}

func redirectHotel() models.HotelConfig {
	hotel := apiHotel()
	hotel.Engine.Redirect = &models.RedirectConfig{Enabled: true, PropertyURLID: "lmKzDQ"}
	return hotel
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubEngine{
		avail: []models.RoomAvailability{{RoomID: "rt1", AvailableRooms: 2}},
	}, apiHotel())

	body := `{"checkIn":"2025-07-30","checkOut":"2025-08-06","adults":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/hotel-1/availability", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var out struct {
		Availability []models.RoomAvailability `json:"availability"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(out.Availability) != 1 || out.Availability[0].RoomID != "rt1" {
		t.Fatalf("unexpected availability payload: %+v", out)
	}
}

func TestCreateBookingEndpointValidatesAPIMode(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { timeNow = restore }()

	r := newTestRouter(t, &stubEngine{
		resp: &models.BookingResponse{Success: true, Mode: models.BookingModeAPI, BookingID: "res-1"},
	}, apiHotel())

	// Missing guest details must be rejected before the engine is called.
	body := `{"checkIn":"2025-07-30","checkOut":"2025-08-06","adults":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/hotel-1/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "guest details are required") {
		t.Fatalf("expected validation errors in body: %s", w.Body.String())
	}
}

func TestCreateBookingEndpointSkipsValidationForRedirectHotels(t *testing.T) {
	r := newTestRouter(t, &stubEngine{
		features: []string{engine.FeatureRedirectBooking},
		resp: &models.BookingResponse{
			Success:     true,
			Mode:        models.BookingModeRedirect,
			RedirectURL: "https://hotels.cloudbeds.com/en/reservas/lmKzDQ",
		},
	}, redirectHotel())

	// No guest details: the hosted widget collects them.
	body := `{"checkIn":"2025-07-30","checkOut":"2025-08-06","adults":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/hotel-1/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.BookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Mode != models.BookingModeRedirect || resp.RedirectURL == "" {
		t.Fatalf("expected redirect response, got %+v", resp)
	}
}

func TestBookingURLEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubEngine{}, redirectHotel())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/booking/hotel-1/booking-url?checkin=2025-07-30&checkout=2025-08-06&adults=2&children=1&currency=eur", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	want := "https://hotels.cloudbeds.com/en/reservas/lmKzDQ?checkin=2025-07-30&checkout=2025-08-06&adults=2&currency=eur&kids=1"
	if out.URL != want {
		t.Fatalf("url = %q, want %q", out.URL, want)
	}
}

func TestBookingURLEndpointWithoutRedirectConfig(t *testing.T) {
	r := newTestRouter(t, &stubEngine{}, apiHotel())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/booking/hotel-1/booking-url?checkin=2025-07-30&checkout=2025-08-06", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing redirect config, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "configuration") {
		t.Fatalf("expected configuration kind in body: %s", w.Body.String())
	}
}
