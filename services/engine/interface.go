package engine

import (
	"context"

	"innflow/models"
)

// Feature identifiers reported by SupportedFeatures.
const (
	FeatureAvailability    = "availability"
	FeatureRates           = "rates"
	FeatureBooking         = "booking"
	FeatureCancellation    = "cancellation"
	FeatureModification    = "modification"
	FeatureRedirectBooking = "redirectBooking"
	FeaturePropertyInfo    = "propertyInfo"
)

// BookingEngine is the provider-agnostic contract every adapter
// implements. Initialize must succeed before any other call; operations
// on an uninitialized engine fail with ConfigurationError. Every
// operation except ValidateConfig and SupportedFeatures may return one of
// the typed errors in this package.
type BookingEngine interface {
	Initialize(ctx context.Context, cfg models.EngineConfig) error
	CheckAvailability(ctx context.Context, query models.RateQuery) ([]models.RoomAvailability, error)
	GetRates(ctx context.Context, query models.RateQuery) ([]models.RoomRate, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*models.BookingDetails, error)
	CancelBooking(ctx context.Context, bookingID, reason string) error
	ModifyBooking(ctx context.Context, bookingID string, changes models.BookingChanges) (*models.BookingDetails, error)
	ValidateConfig(cfg models.EngineConfig) bool
	SupportedFeatures() []string

	// ProviderRooms returns the room catalog loaded at Initialize. Empty
	// when the catalog load failed; room mapping is an enhancement, not a
	// prerequisite.
	ProviderRooms() []models.ProviderRoom

	BestEffortReader
}

// PaymentRecorder is an optional capability: adapters whose provider
// accepts payment submission against an existing reservation implement
// it in addition to BookingEngine.
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, bookingID string, amount float64, method string) error
}

// BestEffortReader groups the secondary reads that return a labeled
// default dataset instead of an error when the provider call fails. The
// composing pages degrade gracefully without this data. Availability,
// rates and booking mutations never use this policy.
type BestEffortReader interface {
	GetPropertyInfo(ctx context.Context) (*models.PropertyInfo, error)
	GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	GetRatePlans(ctx context.Context) ([]models.RatePlan, error)
}
