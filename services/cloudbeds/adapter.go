// Package cloudbeds implements the booking engine contract against the
// Cloudbeds Property Management System.
package cloudbeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"innflow/models"
	"innflow/services/engine"
	"innflow/services/redirect"
)

const providerName = "cloudbeds"

// Adapter is the Cloudbeds-backed booking engine. It moves from
// uninitialized to ready inside Initialize: resolve an access credential,
// then best-effort load the provider room catalog. Any contract operation
// before that fails with ConfigurationError.
type Adapter struct {
	logger  *zap.Logger
	baseURL string

	cfg     models.EngineConfig
	client  *apiClient
	catalog []models.ProviderRoom
	ready   bool
}

// New builds an uninitialized adapter. Matches engine.Builder.
func New(logger *zap.Logger) engine.BookingEngine {
	return &Adapter{logger: logger, baseURL: apiBase}
}

// ValidateConfig reports whether the config carries the credentials this
// provider requires: a property ID plus either an API key or a client
// ID/secret pair.
func (a *Adapter) ValidateConfig(cfg models.EngineConfig) bool {
	if cfg.Provider != models.ProviderCloudbeds {
		return false
	}
	creds := cfg.Credentials
	if creds.PropertyID == "" {
		return false
	}
	if creds.APIKey == "" && (creds.ClientID == "" || creds.ClientSecret == "") {
		return false
	}
	return true
}

// Initialize resolves the access credential and loads the room catalog.
// Catalog load failure is logged, not fatal: room mapping is an
// enhancement, not a prerequisite for availability or rates.
func (a *Adapter) Initialize(ctx context.Context, cfg models.EngineConfig) error {
	if !a.ValidateConfig(cfg) {
		return engine.NewConfigurationError(providerName, "missing property ID or credentials")
	}
	a.cfg = cfg

	token, err := a.resolveToken(ctx, cfg.Credentials)
	if err != nil {
		return err
	}
	a.client = newAPIClient(a.baseURL, token, cfg.Credentials.PropertyID)
	a.ready = true

	if err := a.loadRoomCatalog(ctx); err != nil {
		a.logger.Warn("cloudbeds: room catalog load failed, continuing without mapping",
			zap.String("propertyID", cfg.Credentials.PropertyID), zap.Error(err))
	}
	return nil
}

// resolveToken prefers the static API key; otherwise it exchanges client
// credentials once. Token refresh is out of scope.
func (a *Adapter) resolveToken(ctx context.Context, creds models.EngineCredentials) (string, error) {
	if creds.APIKey != "" {
		return creds.APIKey, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(a.baseURL, "/")+"/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", engine.NewConfigurationError(providerName, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := (&http.Client{Timeout: clientTimeout}).Do(req)
	if err != nil {
		return "", engine.NewEngineError(providerName, "token request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", engine.NewEngineError(providerName, "failed to read token response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", engine.NewConfigurationError(providerName,
			fmt.Sprintf("token endpoint rejected credentials (HTTP %d)", resp.StatusCode))
	}

	var tok wireAccessToken
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return "", engine.NewConfigurationError(providerName, "token endpoint returned no access token")
	}
	return tok.AccessToken, nil
}

func (a *Adapter) loadRoomCatalog(ctx context.Context) error {
	var rooms []wireRoomType
	if err := a.client.get(ctx, "/getRoomTypes", nil, &rooms); err != nil {
		return err
	}

	catalog := make([]models.ProviderRoom, 0, len(rooms))
	for _, r := range rooms {
		catalog = append(catalog, models.ProviderRoom{
			ID:           r.RoomTypeID,
			Name:         r.RoomTypeName,
			ShortName:    r.RoomTypeNameShort,
			Description:  r.RoomTypeDescription,
			MaxOccupancy: r.MaxGuests,
			BaseRate:     r.RoomRate,
		})
	}
	a.catalog = catalog
	a.logger.Debug("cloudbeds: room catalog loaded", zap.Int("rooms", len(catalog)))
	return nil
}

// ProviderRooms returns the catalog loaded at Initialize. Empty when the
// load failed.
func (a *Adapter) ProviderRooms() []models.ProviderRoom {
	return a.catalog
}

// resolveRoomTypeID maps a caller-supplied room-type label to the
// provider's internal ID via exact ID, name or short-name match against
// the loaded catalog. Unresolved labels pass through with a warning:
// degrade rather than fail.
func (a *Adapter) resolveRoomTypeID(label string) string {
	for _, room := range a.catalog {
		if room.ID == label || room.Name == label || room.ShortName == label {
			return room.ID
		}
	}
	a.logger.Warn("cloudbeds: room type label not found in catalog, passing through",
		zap.String("label", label))
	return label
}

// SupportedFeatures lists what this adapter can do for its configuration.
func (a *Adapter) SupportedFeatures() []string {
	features := []string{
		engine.FeatureAvailability,
		engine.FeatureRates,
		engine.FeatureBooking,
		engine.FeatureCancellation,
		engine.FeatureModification,
		engine.FeaturePropertyInfo,
	}
	if redirect.UsesRedirectBooking(a.cfg) {
		features = append(features, engine.FeatureRedirectBooking)
	}
	return features
}

func (a *Adapter) requireReady() error {
	if !a.ready {
		return engine.NewConfigurationError(providerName, "adapter is not initialized")
	}
	return nil
}
