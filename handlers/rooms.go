package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innflow/directus"
	"innflow/services/booking"
	"innflow/services/mapping"
	"innflow/utils"
)

// RoomsHandler exposes room mapping diagnostics. All endpoints sit behind
// the admin auth middleware; mappings are recomputed per call, never
// persisted.
type RoomsHandler struct {
	Service *booking.Service
	Hotels  *directus.Client
	Logger  *zap.Logger
}

func NewRoomsHandler(service *booking.Service, hotels *directus.Client, logger *zap.Logger) *RoomsHandler {
	return &RoomsHandler{Service: service, Hotels: hotels, Logger: logger}
}

func (h *RoomsHandler) ensureHotel(c *gin.Context, hotelID string) bool {
	if h.Service.HasEngine(hotelID) {
		return true
	}
	hotel, err := h.Hotels.HotelByID(c.Request.Context(), hotelID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "hotel not found", err.Error())
		return false
	}
	if err := h.Service.InitializeForHotel(c.Request.Context(), *hotel); err != nil {
		utils.EngineError(c, err)
		return false
	}
	return true
}

// MappedRooms handles GET /api/rooms/:hotelID/mapped.
func (h *RoomsHandler) MappedRooms(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	mapped, err := h.Service.GetMappedRooms(hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": mapped})
}

// MappingStats handles GET /api/rooms/:hotelID/mapping-stats.
func (h *RoomsHandler) MappingStats(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	stats, err := h.Service.GetRoomMappingStats(hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ValidateMapping handles GET /api/rooms/:hotelID/mapping-validation.
func (h *RoomsHandler) ValidateMapping(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	validation, err := h.Service.ValidateRoomMapping(hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, validation)
}

// SuggestMatch handles POST /api/rooms/:hotelID/suggest. It returns the
// best fuzzy provider-room match for a hotel room name, for editors
// wiring up explicit cross references. Suggestions only; nothing is
// bound automatically.
func (h *RoomsHandler) SuggestMatch(c *gin.Context) {
	hotelID := c.Param("hotelID")
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "room name is required", "")
		return
	}
	if !h.ensureHotel(c, hotelID) {
		return
	}

	candidates, err := h.Service.ProviderRooms(hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}

	match := mapping.FindBestRoomMatch(input.Name, candidates)
	if match == nil {
		c.JSON(http.StatusOK, gin.H{"match": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match})
}
