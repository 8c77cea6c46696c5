// Package redirect builds deep links into the provider's hosted booking
// widget for hotels using the non-API booking flow. It is stateless and
// bypasses the adapter entirely.
package redirect

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"innflow/models"
	"innflow/services/engine"
)

const (
	defaultBaseURL  = "https://hotels.cloudbeds.com"
	defaultLanguage = "en"
	defaultCurrency = "eur"
	bookingPath     = "reservas"
	dateLayout      = "2006-01-02"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Params are the stay parameters encoded into the widget URL.
type Params struct {
	CheckIn   string
	CheckOut  string
	Adults    int
	Children  int
	Rooms     int
	Currency  string
	Language  string
	PromoCode string
}

// BuildURL composes
// {base}/{language}/reservas/{slug}?checkin=&checkout=&adults=&currency=
// with kids, rooms and promoCode appended only when applicable. It
// validates the widget slug, date shape and ordering, and the adult
// count, returning a descriptive error for each violation.
func BuildURL(cfg *models.RedirectConfig, params Params) (string, error) {
	if cfg == nil || strings.TrimSpace(cfg.PropertyURLID) == "" {
		return "", engine.NewConfigurationError("redirect", "hosted widget property_url_id is not set")
	}
	if !datePattern.MatchString(params.CheckIn) {
		return "", fmt.Errorf("checkIn %q is not a YYYY-MM-DD date", params.CheckIn)
	}
	if !datePattern.MatchString(params.CheckOut) {
		return "", fmt.Errorf("checkOut %q is not a YYYY-MM-DD date", params.CheckOut)
	}
	checkIn, err := time.Parse(dateLayout, params.CheckIn)
	if err != nil {
		return "", fmt.Errorf("checkIn %q is not a valid date", params.CheckIn)
	}
	checkOut, err := time.Parse(dateLayout, params.CheckOut)
	if err != nil {
		return "", fmt.Errorf("checkOut %q is not a valid date", params.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return "", fmt.Errorf("checkOut %s must be after checkIn %s", params.CheckOut, params.CheckIn)
	}
	if params.Adults < 1 {
		return "", fmt.Errorf("adults must be at least 1, got %d", params.Adults)
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	language := firstNonEmpty(params.Language, cfg.DefaultLanguage, defaultLanguage)
	currency := firstNonEmpty(params.Currency, cfg.DefaultCurrency, defaultCurrency)

	// The widget expects the parameters in this exact order; url.Values
	// would re-sort them alphabetically.
	var query strings.Builder
	fmt.Fprintf(&query, "checkin=%s&checkout=%s&adults=%d&currency=%s",
		url.QueryEscape(params.CheckIn), url.QueryEscape(params.CheckOut),
		params.Adults, url.QueryEscape(currency))
	if params.Children > 0 {
		fmt.Fprintf(&query, "&kids=%d", params.Children)
	}
	if params.Rooms > 0 {
		fmt.Fprintf(&query, "&rooms=%d", params.Rooms)
	}
	if params.PromoCode != "" {
		fmt.Fprintf(&query, "&promoCode=%s", url.QueryEscape(params.PromoCode))
	}

	return fmt.Sprintf("%s/%s/%s/%s?%s",
		base, url.PathEscape(language), bookingPath,
		url.PathEscape(strings.TrimSpace(cfg.PropertyURLID)), query.String()), nil
}

// UsesRedirectBooking is the single authoritative predicate deciding
// whether a hotel books via the hosted widget instead of the API.
func UsesRedirectBooking(cfg models.EngineConfig) bool {
	return cfg.Redirect != nil && cfg.Redirect.Enabled
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
