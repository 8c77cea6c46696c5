package models

// ProviderRoom is one room type from the PMS's independently managed
// catalog.
type ProviderRoom struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ShortName    string  `json:"shortName,omitempty"`
	Description  string  `json:"description,omitempty"`
	MaxOccupancy int     `json:"maxOccupancy,omitempty"`
	BaseRate     float64 `json:"baseRate,omitempty"`
}

// StayRestrictions holds provider restriction metadata for a stay.
type StayRestrictions struct {
	MinStay int `json:"minStay,omitempty"`
	MaxStay int `json:"maxStay,omitempty"`
}

// RoomAvailability is one available room type for a queried stay.
// Ephemeral: recomputed per call, never cached.
type RoomAvailability struct {
	RoomID         string           `json:"roomId"`
	RoomType       string           `json:"roomType"`
	AvailableRooms int              `json:"availableRooms"`
	Price          float64          `json:"price"`
	Currency       string           `json:"currency"`
	MaxOccupancy   int              `json:"maxOccupancy,omitempty"`
	Restrictions   StayRestrictions `json:"restrictions"`
}

// RoomRate is one priced room/rate-plan combination for a queried stay.
type RoomRate struct {
	RoomID     string  `json:"roomId"`
	RoomType   string  `json:"roomType"`
	RatePlanID string  `json:"ratePlanId,omitempty"`
	RateName   string  `json:"rateName,omitempty"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`
}

// MappedRoom joins one hotel-authored room with one provider room.
type MappedRoom struct {
	Directus     DirectusRoom `json:"directus"`
	Provider     ProviderRoom `json:"provider"`
	CurrentPrice float64      `json:"currentPrice,omitempty"`
	Available    bool         `json:"available"`
}

// RoomMatch is a fuzzy-match suggestion, never an automatic binding.
type RoomMatch struct {
	Room       ProviderRoom `json:"room"`
	Confidence float64      `json:"confidence"`
}

// RoomMappingStats summarizes one mapping pass over both catalogs.
type RoomMappingStats struct {
	TotalDirectus    int      `json:"totalDirectus"`
	TotalProvider    int      `json:"totalProvider"`
	Mapped           int      `json:"mapped"`
	UnmappedDirectus []string `json:"unmappedDirectus,omitempty"`
	UnmappedProvider []string `json:"unmappedProvider,omitempty"`
}

// MappingValidation reports hard mapping errors, e.g. duplicate
// normalized names on either side or zero rooms mapped.
type MappingValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}
