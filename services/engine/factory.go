package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"innflow/models"
)

// Builder constructs an uninitialized engine for one provider kind.
type Builder func(logger *zap.Logger) BookingEngine

// Factory maps a hotel's declared provider kind to a constructor. It is
// an explicitly constructed registry owned by the composition root, so
// tests can instantiate isolated instances.
type Factory struct {
	builders map[models.ProviderKind]Builder
	logger   *zap.Logger
}

func NewFactory(logger *zap.Logger) *Factory {
	return &Factory{
		builders: make(map[models.ProviderKind]Builder),
		logger:   logger,
	}
}

// Register binds a provider kind to its adapter constructor.
func (f *Factory) Register(kind models.ProviderKind, build Builder) {
	f.builders[kind] = build
}

// EngineFor validates the hotel's engine configuration, constructs the
// matching adapter and initializes it. Provider kinds without a
// registered builder fail fast with ConfigurationError naming the
// provider rather than constructing a non-functional adapter.
func (f *Factory) EngineFor(ctx context.Context, hotel models.HotelConfig) (BookingEngine, error) {
	cfg := hotel.Engine
	if cfg.Provider == "" || cfg.Provider == models.ProviderNone {
		return nil, NewConfigurationError("factory",
			fmt.Sprintf("hotel %q has no booking provider configured", hotel.ID))
	}

	build, ok := f.builders[cfg.Provider]
	if !ok {
		return nil, NewConfigurationError(string(cfg.Provider),
			fmt.Sprintf("provider %q is not implemented", cfg.Provider))
	}

	eng := build(f.logger)
	if !eng.ValidateConfig(cfg) {
		return nil, NewConfigurationError(string(cfg.Provider),
			fmt.Sprintf("hotel %q is missing required credentials for provider %q", hotel.ID, cfg.Provider))
	}

	if err := eng.Initialize(ctx, cfg); err != nil {
		return nil, err
	}

	f.logger.Info("booking engine initialized",
		zap.String("hotelID", hotel.ID),
		zap.String("provider", string(cfg.Provider)))
	return eng, nil
}
