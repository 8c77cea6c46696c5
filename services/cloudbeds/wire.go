package cloudbeds

// Wire shapes for the Cloudbeds endpoints the adapter consumes. Field
// names follow the provider's JSON; translation into the common models
// happens in the operation files.

type wireRoomType struct {
	RoomTypeID          string  `json:"roomTypeID"`
	RoomTypeName        string  `json:"roomTypeName"`
	RoomTypeNameShort   string  `json:"roomTypeNameShort"`
	RoomTypeDescription string  `json:"roomTypeDescription"`
	MaxGuests           int     `json:"maxGuests"`
	RoomRate            float64 `json:"roomRate"`
}

type wireAvailableRoomType struct {
	RoomTypeID     string  `json:"roomTypeID"`
	RoomTypeName   string  `json:"roomTypeName"`
	RoomsAvailable int     `json:"roomsAvailable"`
	RoomRate       float64 `json:"roomRate"`
	Currency       string  `json:"currency"`
	MaxGuests      int     `json:"maxGuests"`
}

type wirePropertyAvailability struct {
	PropertyID string                  `json:"propertyID"`
	RoomTypes  []wireAvailableRoomType `json:"propertyRooms"`
}

type wireRate struct {
	RoomTypeID   string  `json:"roomTypeID"`
	RoomTypeName string  `json:"roomTypeName"`
	RatePlanID   string  `json:"ratePlanID"`
	RatePlanName string  `json:"ratePlanName"`
	TotalRate    float64 `json:"totalRate"`
	Currency     string  `json:"currency"`
}

type wireReservation struct {
	ReservationID string  `json:"reservationID"`
	Status        string  `json:"status"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	GuestName     string  `json:"guestName"`
	RoomTypeName  string  `json:"roomTypeName"`
	GrandTotal    float64 `json:"grandTotal"`
	Currency      string  `json:"currency"`
}

type wirePaymentMethod struct {
	Code string `json:"method"`
	Name string `json:"methodName"`
}

type wireRatePlan struct {
	RatePlanID   string `json:"ratePlanID"`
	RatePlanName string `json:"ratePlanNamePublic"`
	Currency     string `json:"currency"`
}

type wireHotel struct {
	PropertyID       string `json:"propertyID"`
	PropertyName     string `json:"propertyName"`
	PropertyCity     string `json:"propertyCity"`
	PropertyCountry  string `json:"propertyCountry"`
	PropertyTimezone string `json:"propertyTimezone"`
	PropertyCurrency struct {
		CurrencyCode string `json:"currencyCode"`
	} `json:"propertyCurrency"`
	CheckInTime  string `json:"propertyCheckInTime"`
	CheckOutTime string `json:"propertyCheckOutTime"`
}

type wireAccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
