package models

// ProviderKind identifies a booking engine provider. The set is closed;
// only Cloudbeds has a working adapter today.
type ProviderKind string

const (
	ProviderCloudbeds  ProviderKind = "cloudbeds"
	ProviderMews       ProviderKind = "mews"
	ProviderSiteMinder ProviderKind = "siteminder"
	ProviderNone       ProviderKind = "none"
)

// EngineCredentials carries the secrets a provider adapter needs. At least
// one credential path (APIKey, or ClientID+ClientSecret) plus PropertyID
// is required. Credentials never leave the adapter instance.
type EngineCredentials struct {
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	APIKey       string `json:"api_key,omitempty"`
	PropertyID   string `json:"property_id"`
}

// EngineSettings holds per-hotel defaults applied when the provider
// response omits a value.
type EngineSettings struct {
	Currency string `json:"currency"`
	Language string `json:"language"`
}

// RedirectConfig enables the hosted-widget booking flow. When enabled,
// bookings are deep links into the provider's own booking page instead of
// API calls.
type RedirectConfig struct {
	Enabled         bool   `json:"enabled"`
	PropertyURLID   string `json:"property_url_id"`
	BaseURL         string `json:"base_url,omitempty"`
	DefaultLanguage string `json:"default_language,omitempty"`
	DefaultCurrency string `json:"default_currency,omitempty"`
}

// EngineConfig is the full booking engine configuration for one hotel.
type EngineConfig struct {
	Provider    ProviderKind      `json:"provider"`
	Credentials EngineCredentials `json:"credentials"`
	Settings    EngineSettings    `json:"settings"`
	Redirect    *RedirectConfig   `json:"redirect,omitempty"`
}

// DirectusRoom is a room record authored in the hotel's own content
// system. It shares no key with the provider catalog except a
// human-entered name and the optional PMSRoomID cross reference.
type DirectusRoom struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PMSRoomID   string  `json:"pms_room_id,omitempty"`
	Description string  `json:"description,omitempty"`
	MaxGuests   int     `json:"max_guests,omitempty"`
	BasePrice   float64 `json:"base_price,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// HotelConfig is the hotel record supplied by the surrounding content
// system. Its retrieval lives in the directus package; the booking core
// only consumes the struct.
type HotelConfig struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Subdomain string         `json:"subdomain,omitempty"`
	Engine    EngineConfig   `json:"engine"`
	Rooms     []DirectusRoom `json:"rooms,omitempty"`
}
