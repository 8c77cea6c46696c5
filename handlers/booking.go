package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"innflow/directus"
	"innflow/models"
	"innflow/services/booking"
	"innflow/services/engine"
	"innflow/services/redirect"
	"innflow/utils"
)

// BookingHandler exposes the booking façade to the site's pages and API
// routes.
type BookingHandler struct {
	Service *booking.Service
	Hotels  *directus.Client
	Logger  *zap.Logger
}

func NewBookingHandler(service *booking.Service, hotels *directus.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Hotels: hotels, Logger: logger}
}

// ensureHotel lazily initializes the hotel's engine from its content
// system record. Once cached, the engine lives for the process lifetime.
func (h *BookingHandler) ensureHotel(c *gin.Context, hotelID string) bool {
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

// CheckAvailability handles POST /api/booking/:hotelID/availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	hotelID := c.Param("hotelID")
	var query models.RateQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability query", err.Error())
		return
	}
	if !h.ensureHotel(c, hotelID) {
		return
	}

	rooms, err := h.Service.CheckAvailability(c.Request.Context(), hotelID, query)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": rooms})
}

// GetRates handles POST /api/booking/:hotelID/rates.
func (h *BookingHandler) GetRates(c *gin.Context) {
	hotelID := c.Param("hotelID")
	var query models.RateQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rate query", err.Error())
		return
	}
	if !h.ensureHotel(c, hotelID) {
		return
	}

	rates, err := h.Service.GetRates(c.Request.Context(), hotelID, query)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": rates})
}

// GetAvailabilityAndRates handles POST /api/booking/:hotelID/availability-and-rates.
func (h *BookingHandler) GetAvailabilityAndRates(c *gin.Context) {
	hotelID := c.Param("hotelID")
	var query models.RateQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid stay query", err.Error())
		return
	}
	if !h.ensureHotel(c, hotelID) {
		return
	}

	result, err := h.Service.GetAvailabilityAndRates(c.Request.Context(), hotelID, query)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateBooking handles POST /api/booking/:hotelID/reservations.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	hotelID := c.Param("hotelID")
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		return
	}
	if !h.ensureHotel(c, hotelID) {
		return
	}

	// Redirect-mode hotels collect guest details on the hosted widget, so
	// only API-mode requests get the full validation pass here.
	if !h.Service.SupportsFeature(hotelID, engine.FeatureRedirectBooking) {
		if problems := booking.ValidateBookingRequest(req, timeNow()); len(problems) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": problems})
			return
		}
	}

	resp, err := h.Service.CreateBooking(c.Request.Context(), hotelID, req)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetBooking handles GET /api/booking/:hotelID/reservations/:bookingID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	details, err := h.Service.GetBooking(c.Request.Context(), hotelID, c.Param("bookingID"))
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// CancelBooking handles DELETE /api/booking/:hotelID/reservations/:bookingID.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	reason := c.Query("reason")
	if err := h.Service.CancelBooking(c.Request.Context(), hotelID, c.Param("bookingID"), reason); err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canceled": true})
}

// ModifyBooking handles PATCH /api/booking/:hotelID/reservations/:bookingID.
func (h *BookingHandler) ModifyBooking(c *gin.Context) {
	hotelID := c.Param("hotelID")
	var changes models.BookingChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking changes", err.Error())
		return
	}
	if !h.ensureHotel(c, hotelID) {
		return
	}

	details, err := h.Service.ModifyBooking(c.Request.Context(), hotelID, c.Param("bookingID"), changes)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// RecordPayment handles POST /api/booking/:hotelID/reservations/:bookingID/payments.
func (h *BookingHandler) RecordPayment(c *gin.Context) {
	hotelID := c.Param("hotelID")
	var input struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment", err.Error())
		return
	}
	if !h.ensureHotel(c, hotelID) {
		return
	}

	err := h.Service.RecordPayment(c.Request.Context(), hotelID, c.Param("bookingID"), input.Amount, input.Method)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}

// BookingURL handles GET /api/booking/:hotelID/booking-url for
// redirect-mode hotels; the page links the guest straight to the hosted
// widget without touching the adapter.
func (h *BookingHandler) BookingURL(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}
	hotel, err := h.Service.Hotel(hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}

	adults, _ := strconv.Atoi(c.DefaultQuery("adults", "2"))
	children, _ := strconv.Atoi(c.Query("children"))
	rooms, _ := strconv.Atoi(c.Query("rooms"))

	bookingURL, err := redirect.BuildURL(hotel.Engine.Redirect, redirect.Params{
		CheckIn:   c.Query("checkin"),
		CheckOut:  c.Query("checkout"),
		Adults:    adults,
		Children:  children,
		Rooms:     rooms,
		Currency:  c.Query("currency"),
		Language:  c.Query("language"),
		PromoCode: c.Query("promoCode"),
	})
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": bookingURL})
}

// PropertyInfo handles GET /api/booking/:hotelID/property.
func (h *BookingHandler) PropertyInfo(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	info, err := h.Service.GetPropertyInfo(c.Request.Context(), hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// PaymentMethods handles GET /api/booking/:hotelID/payment-methods.
func (h *BookingHandler) PaymentMethods(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	methods, err := h.Service.GetPaymentMethods(c.Request.Context(), hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
}

// RatePlans handles GET /api/booking/:hotelID/rate-plans.
func (h *BookingHandler) RatePlans(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	plans, err := h.Service.GetRatePlans(c.Request.Context(), hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratePlans": plans})
}

// Features handles GET /api/booking/:hotelID/features.
func (h *BookingHandler) Features(c *gin.Context) {
	hotelID := c.Param("hotelID")
	if !h.ensureHotel(c, hotelID) {
		return
	}

	features, err := h.Service.Features(hotelID)
	if err != nil {
		utils.EngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"features": features})
}
