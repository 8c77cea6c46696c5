package cloudbeds

import (
	"context"

	"go.uber.org/zap"

	"innflow/models"
)

// Best-effort reads. These feed non-critical page content, so on provider
// failure they return the labeled defaults below instead of an error.
// Availability, rates and booking mutations never degrade this way.

// defaultPaymentMethods is the fallback dataset served when the provider
// payment-method listing fails.
var defaultPaymentMethods = []models.PaymentMethod{
	{Code: "visa", Label: "Visa"},
	{Code: "master", Label: "Mastercard"},
	{Code: "cash", Label: "Cash on arrival"},
}

// defaultRatePlans is the fallback dataset served when the provider
// rate-plan listing fails.
var defaultRatePlans = []models.RatePlan{
	{ID: "standard", Name: "Standard Rate"},
}

// GetPaymentMethods lists payment options accepted at the property.
func (a *Adapter) GetPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}

	var methods []wirePaymentMethod
	if err := a.client.get(ctx, "/getPaymentMethods", nil, &methods); err != nil {
		a.logger.Warn("cloudbeds: payment method listing failed, serving defaults", zap.Error(err))
		return defaultPaymentMethods, nil
	}

	out := make([]models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		out = append(out, models.PaymentMethod{Code: m.Code, Label: m.Name})
	}
	if len(out) == 0 {
		return defaultPaymentMethods, nil
	}
	return out, nil
}

// GetRatePlans lists the property's bookable rate plans.
func (a *Adapter) GetRatePlans(ctx context.Context) ([]models.RatePlan, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}

	var plans []wireRatePlan
	if err := a.client.get(ctx, "/getRatePlans", nil, &plans); err != nil {
		a.logger.Warn("cloudbeds: rate plan listing failed, serving defaults", zap.Error(err))
		return defaultRatePlans, nil
	}

	out := make([]models.RatePlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, models.RatePlan{
			ID:       p.RatePlanID,
			Name:     p.RatePlanName,
			Currency: a.currencyOrDefault(p.Currency),
		})
	}
	if len(out) == 0 {
		return defaultRatePlans, nil
	}
	return out, nil
}

// GetPropertyInfo reads the provider's record of the hotel. On failure it
// falls back to what the local configuration already knows.
func (a *Adapter) GetPropertyInfo(ctx context.Context) (*models.PropertyInfo, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}

	var hotels []wireHotel
	if err := a.client.get(ctx, "/getHotels", nil, &hotels); err != nil || len(hotels) == 0 {
		a.logger.Warn("cloudbeds: property detail lookup failed, serving configured defaults",
			zap.Error(err))
		return &models.PropertyInfo{
			PropertyID: a.cfg.Credentials.PropertyID,
			Name:       "Property " + a.cfg.Credentials.PropertyID,
			Currency:   a.cfg.Settings.Currency,
		}, nil
	}

	h := hotels[0]
	return &models.PropertyInfo{
		PropertyID: h.PropertyID,
		Name:       h.PropertyName,
		City:       h.PropertyCity,
		Country:    h.PropertyCountry,
		Timezone:   h.PropertyTimezone,
		Currency:   a.currencyOrDefault(h.PropertyCurrency.CurrencyCode),
		CheckInAt:  h.CheckInTime,
		CheckOutAt: h.CheckOutTime,
	}, nil
}
