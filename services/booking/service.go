// Package booking is the per-process façade over the booking engine
// contract: it keeps one initialized adapter per hotel and layers
// validation, formatting and convenience aggregation on top.
package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"innflow/models"
	"innflow/services/engine"
	"innflow/services/mapping"
)

// Service holds one engine instance per hotel identifier. The registry
// is the only state that outlives a request; engines live for the
// process lifetime and are never explicitly torn down.
type Service struct {
	factory *engine.Factory
	logger  *zap.Logger

	mu      sync.Mutex
	engines map[string]engine.BookingEngine
	hotels  map[string]models.HotelConfig
}

func NewService(factory *engine.Factory, logger *zap.Logger) *Service {
	return &Service{
		factory: factory,
		logger:  logger,
		engines: make(map[string]engine.BookingEngine),
		hotels:  make(map[string]models.HotelConfig),
	}
}

// InitializeForHotel builds and caches an engine for the hotel. Not
// idempotent: a second call replaces the cached engine; in-flight
// operations on the previous instance finish on it unaffected.
func (s *Service) InitializeForHotel(ctx context.Context, hotel models.HotelConfig) error {
	eng, err := s.factory.EngineFor(ctx, hotel)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.engines[hotel.ID] = eng
	s.hotels[hotel.ID] = hotel
	s.mu.Unlock()

	s.logger.Info("hotel booking engine registered", zap.String("hotelID", hotel.ID))
	return nil
}

func (s *Service) engineFor(hotelID string) (engine.BookingEngine, models.HotelConfig, error) {
	s.mu.Lock()
	eng, ok := s.engines[hotelID]
	hotel := s.hotels[hotelID]
	s.mu.Unlock()
	if !ok {
		return nil, models.HotelConfig{}, engine.NewConfigurationError("booking",
			fmt.Sprintf("no booking engine initialized for hotel %q", hotelID))
	}
	return eng, hotel, nil
}

// HasEngine reports whether an engine is already cached for the hotel.
func (s *Service) HasEngine(hotelID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.engines[hotelID]
	return ok
}

// Hotel returns the configuration the hotel was initialized with.
func (s *Service) Hotel(hotelID string) (models.HotelConfig, error) {
	_, hotel, err := s.engineFor(hotelID)
	return hotel, err
}

// ProviderRooms exposes the provider catalog the hotel's adapter loaded.
func (s *Service) ProviderRooms(hotelID string) ([]models.ProviderRoom, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.ProviderRooms(), nil
}

// Features lists what the hotel's engine supports.
func (s *Service) Features(hotelID string) ([]string, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.SupportedFeatures(), nil
}

// GetPaymentMethods proxies the best-effort payment method read.
func (s *Service) GetPaymentMethods(ctx context.Context, hotelID string) ([]models.PaymentMethod, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.GetPaymentMethods(ctx)
}

// GetRatePlans proxies the best-effort rate plan read.
func (s *Service) GetRatePlans(ctx context.Context, hotelID string) ([]models.RatePlan, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.GetRatePlans(ctx)
}

// CheckAvailability proxies to the hotel's engine.
func (s *Service) CheckAvailability(ctx context.Context, hotelID string, query models.RateQuery) ([]models.RoomAvailability, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.CheckAvailability(ctx, query)
}

// GetRates proxies to the hotel's engine.
func (s *Service) GetRates(ctx context.Context, hotelID string, query models.RateQuery) ([]models.RoomRate, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.GetRates(ctx, query)
}

// AvailabilityAndRates bundles the two lookups the stay page needs.
type AvailabilityAndRates struct {
	Availability []models.RoomAvailability `json:"availability"`
	Rates        []models.RoomRate         `json:"rates"`
}

// GetAvailabilityAndRates issues the availability and rate calls
// together and waits for both, avoiding two sequential provider round
// trips. This is the one intentionally concurrent pair in the system.
func (s *Service) GetAvailabilityAndRates(ctx context.Context, hotelID string, query models.RateQuery) (*AvailabilityAndRates, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		avail    []models.RoomAvailability
		rates    []models.RoomRate
		availErr error
		ratesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		avail, availErr = eng.CheckAvailability(ctx, query)
	}()
	go func() {
		defer wg.Done()
		rates, ratesErr = eng.GetRates(ctx, query)
	}()
	wg.Wait()

	if availErr != nil {
		return nil, availErr
	}
	if ratesErr != nil {
		return nil, ratesErr
	}
	return &AvailabilityAndRates{Availability: avail, Rates: rates}, nil
}

// CreateBooking proxies to the hotel's engine, tagging the request with a
// correlation ID for the log trail.
func (s *Service) CreateBooking(ctx context.Context, hotelID string, req models.BookingRequest) (*models.BookingResponse, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	correlationID := uuid.New().String()
	resp, err := eng.CreateBooking(ctx, req)
	if err != nil {
		s.logger.Warn("booking failed",
			zap.String("hotelID", hotelID),
			zap.String("correlationID", correlationID),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("booking created",
		zap.String("hotelID", hotelID),
		zap.String("correlationID", correlationID),
		zap.String("mode", string(resp.Mode)),
		zap.String("bookingID", resp.BookingID))
	return resp, nil
}

// GetBooking proxies to the hotel's engine.
func (s *Service) GetBooking(ctx context.Context, hotelID, bookingID string) (*models.BookingDetails, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.GetBooking(ctx, bookingID)
}

// CancelBooking proxies to the hotel's engine.
func (s *Service) CancelBooking(ctx context.Context, hotelID, bookingID, reason string) error {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return err
	}
	return eng.CancelBooking(ctx, bookingID, reason)
}

// ModifyBooking proxies to the hotel's engine.
func (s *Service) ModifyBooking(ctx context.Context, hotelID, bookingID string, changes models.BookingChanges) (*models.BookingDetails, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.ModifyBooking(ctx, bookingID, changes)
}

// RecordPayment submits a payment when the hotel's adapter supports it.
func (s *Service) RecordPayment(ctx context.Context, hotelID, bookingID string, amount float64, method string) error {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return err
	}
	recorder, ok := eng.(engine.PaymentRecorder)
	if !ok {
		return engine.NewConfigurationError("booking",
			fmt.Sprintf("hotel %q provider does not accept payment submission", hotelID))
	}
	return recorder.RecordPayment(ctx, bookingID, amount, method)
}

// GetPropertyInfo proxies the best-effort property read.
func (s *Service) GetPropertyInfo(ctx context.Context, hotelID string) (*models.PropertyInfo, error) {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	return eng.GetPropertyInfo(ctx)
}

// GetMappedRooms joins the hotel's own catalog with the provider catalog
// loaded by the adapter. Recomputed per call, never persisted.
func (s *Service) GetMappedRooms(hotelID string) ([]models.MappedRoom, error) {
	eng, hotel, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	mapped, _ := mapping.MapRoomsByName(hotel.Rooms, eng.ProviderRooms())
	return mapped, nil
}

// GetRoomMappingStats reports mapping-quality diagnostics for the hotel.
func (s *Service) GetRoomMappingStats(hotelID string) (*models.RoomMappingStats, error) {
	eng, hotel, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	stats := mapping.MappingStats(hotel.Rooms, eng.ProviderRooms())
	return &stats, nil
}

// ValidateRoomMapping reports hard mapping errors for the hotel.
func (s *Service) ValidateRoomMapping(hotelID string) (*models.MappingValidation, error) {
	eng, hotel, err := s.engineFor(hotelID)
	if err != nil {
		return nil, err
	}
	validation := mapping.ValidateRoomMapping(hotel.Rooms, eng.ProviderRooms())
	return &validation, nil
}

// SupportsFeature probes the hotel's engine, converting any lookup error
// into false rather than propagating it.
func (s *Service) SupportsFeature(hotelID, feature string) bool {
	eng, _, err := s.engineFor(hotelID)
	if err != nil {
		return false
	}
	for _, f := range eng.SupportedFeatures() {
		if f == feature {
			return true
		}
	}
	return false
}
