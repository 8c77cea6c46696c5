package models

// PropertyInfo is the provider's own record of the hotel.
type PropertyInfo struct {
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	Currency   string `json:"currency,omitempty"`
	CheckInAt  string `json:"checkInAt,omitempty"`
	CheckOutAt string `json:"checkOutAt,omitempty"`
}

// PaymentMethod is one payment option accepted at the property.
type PaymentMethod struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// RatePlan is one bookable rate configuration at the property.
type RatePlan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
}
