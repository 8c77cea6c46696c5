package booking

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"innflow/models"
	"innflow/services/engine"
)

// fakeEngine records calls and serves canned results; fakePaymentEngine
// adds the optional payment capability on top of it.
type fakeEngine struct {
	rooms    []models.ProviderRoom
	avail    []models.RoomAvailability
	rates    []models.RoomRate
	resp     *models.BookingResponse
	features []string

	cancelledID     string
	cancelledReason string
}

func (f *fakeEngine) Initialize(ctx context.Context, cfg models.EngineConfig) error { return nil }

func (f *fakeEngine) CheckAvailability(ctx context.Context, query models.RateQuery) ([]models.RoomAvailability, error) {
	return f.avail, nil
}

func (f *fakeEngine) GetRates(ctx context.Context, query models.RateQuery) ([]models.RoomRate, error) {
	return f.rates, nil
}

func (f *fakeEngine) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	return f.resp, nil
}

func (f *fakeEngine) GetBooking(ctx context.Context, bookingID string) (*models.BookingDetails, error) {
	return &models.BookingDetails{BookingID: bookingID, Status: "confirmed"}, nil
}

func (f *fakeEngine) CancelBooking(ctx context.Context, bookingID, reason string) error {
	f.cancelledID = bookingID
	f.cancelledReason = reason
	return nil
}

func (f *fakeEngine) ModifyBooking(ctx context.Context, bookingID string, changes models.BookingChanges) (*models.BookingDetails, error) {
	return &models.BookingDetails{BookingID: bookingID}, nil
}

func (f *fakeEngine) ValidateConfig(cfg models.EngineConfig) bool { return true }

func (f *fakeEngine) SupportedFeatures() []string { return f.features }

func (f *fakeEngine) ProviderRooms() []models.ProviderRoom { return f.rooms }

func (f *fakeEngine) GetPropertyInfo(ctx context.Context) (*models.PropertyInfo, error) {
	return &models.PropertyInfo{Name: "Fake Hotel"}, nil
}

func (f *fakeEngine) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return nil, nil
}

func (f *fakeEngine) GetRatePlans(ctx context.Context) ([]models.RatePlan, error) {
	return nil, nil
}

type fakePaymentEngine struct {
	fakeEngine
	paidID     string
	paidAmount float64
	paidMethod string
}

func (f *fakePaymentEngine) RecordPayment(ctx context.Context, bookingID string, amount float64, method string) error {
	f.paidID = bookingID
	f.paidAmount = amount
	f.paidMethod = method
	return nil
}

func testHotel(id string) models.HotelConfig {
	return models.HotelConfig{
		ID:   id,
		Name: "Test Hotel",
		Engine: models.EngineConfig{
			Provider: models.ProviderCloudbeds,
			Credentials: models.EngineCredentials{
				PropertyID: "prop-1",
				APIKey:     "key",
			},
		},
		Rooms: []models.DirectusRoom{
			{ID: "d1", Name: "Deluxe Room"},
			{ID: "d2", Name: "Attic Loft"},
		},
	}
}

func serviceWith(t *testing.T, eng engine.BookingEngine) *Service {
	t.Helper()
	f := engine.NewFactory(zap.NewNop())
	f.Register(models.ProviderCloudbeds, func(logger *zap.Logger) engine.BookingEngine {
		return eng
	})
	s := NewService(f, zap.NewNop())
	if err := s.InitializeForHotel(context.Background(), testHotel("hotel-1")); err != nil {
		t.Fatalf("InitializeForHotel failed: %v", err)
	}
	return s
}

func TestInitializeForHotelCachesEngine(t *testing.T) {
	s := serviceWith(t, &fakeEngine{})
	if !s.HasEngine("hotel-1") {
		t.Fatal("engine should be cached after initialization")
	}
	if s.HasEngine("hotel-2") {
		t.Fatal("no engine should exist for an unknown hotel")
	}
}

func TestOperationsOnUnknownHotelFailWithConfigurationError(t *testing.T) {
	s := NewService(engine.NewFactory(zap.NewNop()), zap.NewNop())

	_, err := s.CheckAvailability(context.Background(), "nope", models.RateQuery{})
	var confErr *engine.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if s.SupportsFeature("nope", engine.FeatureBooking) {
		t.Fatal("SupportsFeature must be false for unknown hotels")
	}
}

func TestInitializeForHotelReplacesEngine(t *testing.T) {
	first := &fakeEngine{rooms: []models.ProviderRoom{{ID: "old"}}}
	second := &fakeEngine{rooms: []models.ProviderRoom{{ID: "new"}}}

	f := engine.NewFactory(zap.NewNop())
	engines := []engine.BookingEngine{first, second}
	f.Register(models.ProviderCloudbeds, func(logger *zap.Logger) engine.BookingEngine {
		eng := engines[0]
		engines = engines[1:]
		return eng
	})

	s := NewService(f, zap.NewNop())
	ctx := context.Background()
	if err := s.InitializeForHotel(ctx, testHotel("hotel-1")); err != nil {
		t.Fatalf("first initialization failed: %v", err)
	}
	if err := s.InitializeForHotel(ctx, testHotel("hotel-1")); err != nil {
		t.Fatalf("second initialization failed: %v", err)
	}

	rooms, err := s.ProviderRooms("hotel-1")
	if err != nil {
		t.Fatalf("ProviderRooms failed: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != "new" {
		t.Fatalf("expected the replacement engine's catalog, got %+v", rooms)
	}
}

func TestGetAvailabilityAndRatesBundlesBothLookups(t *testing.T) {
	s := serviceWith(t, &fakeEngine{
		avail: []models.RoomAvailability{{RoomID: "p1", AvailableRooms: 3}},
		rates: []models.RoomRate{{RoomID: "p1", TotalPrice: 420}},
	})

	out, err := s.GetAvailabilityAndRates(context.Background(), "hotel-1", models.RateQuery{
		CheckIn: "2025-07-30", CheckOut: "2025-08-06", Adults: 2,
	})
	if err != nil {
		t.Fatalf("GetAvailabilityAndRates failed: %v", err)
	}
	if len(out.Availability) != 1 || len(out.Rates) != 1 {
		t.Fatalf("expected both result sets, got %+v", out)
	}
}

func TestCreateBookingPassesThroughRedirectResponse(t *testing.T) {
	s := serviceWith(t, &fakeEngine{
		resp: &models.BookingResponse{
			Success:     true,
			Mode:        models.BookingModeRedirect,
			RedirectURL: "https://hotels.cloudbeds.com/en/reservas/lmKzDQ?checkin=2025-07-30",
		},
	})

	resp, err := s.CreateBooking(context.Background(), "hotel-1", models.BookingRequest{})
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if resp.Mode != models.BookingModeRedirect {
		t.Fatalf("expected redirect mode, got %q", resp.Mode)
	}
	if resp.RedirectURL == "" || resp.BookingID != "" {
		t.Fatalf("redirect response must carry a URL and no booking ID: %+v", resp)
	}
}

func TestCancelBookingForwardsBookingID(t *testing.T) {
	eng := &fakeEngine{}
	s := serviceWith(t, eng)

	if err := s.CancelBooking(context.Background(), "hotel-1", "res-77", "guest request"); err != nil {
		t.Fatalf("CancelBooking failed: %v", err)
	}
	if eng.cancelledID != "res-77" || eng.cancelledReason != "guest request" {
		t.Fatalf("cancel arguments mangled: id=%q reason=%q", eng.cancelledID, eng.cancelledReason)
	}
}

func TestRecordPaymentRequiresCapability(t *testing.T) {
	s := serviceWith(t, &fakeEngine{})

	err := s.RecordPayment(context.Background(), "hotel-1", "res-1", 100, "visa")
	var confErr *engine.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("expected ConfigurationError for non-payment engine, got %v", err)
	}
}

func TestRecordPaymentUsesCapableEngine(t *testing.T) {
	eng := &fakePaymentEngine{}
	s := serviceWith(t, eng)

	if err := s.RecordPayment(context.Background(), "hotel-1", "res-1", 150.5, "master"); err != nil {
		t.Fatalf("RecordPayment failed: %v", err)
	}
	if eng.paidID != "res-1" || eng.paidAmount != 150.5 || eng.paidMethod != "master" {
		t.Fatalf("payment arguments mangled: %+v", eng)
	}
}

func TestGetMappedRoomsJoinsCatalogs(t *testing.T) {
	s := serviceWith(t, &fakeEngine{
		rooms: []models.ProviderRoom{
			{ID: "p1", Name: "Deluxe"},
			{ID: "p2", Name: "Garden View"},
		},
	})

	mapped, err := s.GetMappedRooms("hotel-1")
	if err != nil {
		t.Fatalf("GetMappedRooms failed: %v", err)
	}
	if len(mapped) != 1 || mapped[0].Provider.ID != "p1" {
		t.Fatalf("expected only the deluxe rooms to join, got %+v", mapped)
	}

	stats, err := s.GetRoomMappingStats("hotel-1")
	if err != nil {
		t.Fatalf("GetRoomMappingStats failed: %v", err)
	}
	if stats.Mapped+len(stats.UnmappedDirectus) != stats.TotalDirectus {
		t.Fatalf("stats accounting broken: %+v", stats)
	}
}

func TestSupportsFeature(t *testing.T) {
	s := serviceWith(t, &fakeEngine{features: []string{engine.FeatureAvailability, engine.FeatureRates}})

	if !s.SupportsFeature("hotel-1", engine.FeatureRates) {
		t.Fatal("expected rates feature to be supported")
	}
	if s.SupportsFeature("hotel-1", engine.FeatureBooking) {
		t.Fatal("booking feature should not be reported")
	}
}
