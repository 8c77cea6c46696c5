package models

// RateQuery describes a stay to price or check: calendar dates in
// "2006-01-02" form, check-out strictly after check-in, Adults >= 1.
type RateQuery struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Adults   int    `json:"adults"`
	Children int    `json:"children,omitempty"`
	Rooms    int    `json:"rooms,omitempty"`
}

// GuestDetails identifies the booking guest. Optional on a rate lookup,
// required for booking creation.
type GuestDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Zip       string `json:"zip,omitempty"`
}

// BookingRequest is a RateQuery plus room selection and guest identity.
type BookingRequest struct {
	CheckIn         string        `json:"checkIn"`
	CheckOut        string        `json:"checkOut"`
	Adults          int           `json:"adults"`
	Children        int           `json:"children,omitempty"`
	Rooms           int           `json:"rooms,omitempty"`
	RoomType        string        `json:"roomType,omitempty"`
	RatePlanID      string        `json:"ratePlanId,omitempty"`
	Guest           *GuestDetails `json:"guest,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	PromoCode       string        `json:"promoCode,omitempty"`
}

// BookingChanges carries the mutable fields of an existing reservation.
// Zero values mean "leave unchanged".
type BookingChanges struct {
	CheckIn         string `json:"checkIn,omitempty"`
	CheckOut        string `json:"checkOut,omitempty"`
	Adults          int    `json:"adults,omitempty"`
	Children        int    `json:"children,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// BookingMode discriminates the two structurally different success shapes
// of a booking response.
type BookingMode string

const (
	BookingModeAPI      BookingMode = "api"
	BookingModeRedirect BookingMode = "redirect"
)

// BookingResponse is the result of CreateBooking. API mode carries a
// provider booking ID and confirmation; redirect mode carries only the
// hosted-widget URL. Callers must branch on Mode.
type BookingResponse struct {
	Success            bool        `json:"success"`
	Mode               BookingMode `json:"mode"`
	BookingID          string      `json:"bookingId,omitempty"`
	ConfirmationNumber string      `json:"confirmationNumber,omitempty"`
	TotalAmount        float64     `json:"totalAmount,omitempty"`
	Currency           string      `json:"currency,omitempty"`
	RedirectURL        string      `json:"redirectUrl,omitempty"`
	Error              string      `json:"error,omitempty"`
}

// BookingDetails is a reservation as read back from the provider.
type BookingDetails struct {
	BookingID string  `json:"bookingId"`
	Status    string  `json:"status"`
	CheckIn   string  `json:"checkIn"`
	CheckOut  string  `json:"checkOut"`
	GuestName string  `json:"guestName,omitempty"`
	RoomType  string  `json:"roomType,omitempty"`
	Total     float64 `json:"total,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}
