package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"innflow/handlers"
	"innflow/middleware"
	"innflow/utils"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Rooms   *handlers.RoomsHandler
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking/:hotelID")
	{
		api.POST("/availability", hb.Booking.CheckAvailability)
		api.POST("/rates", hb.Booking.GetRates)
		api.POST("/availability-and-rates", hb.Booking.GetAvailabilityAndRates)
		api.POST("/reservations", hb.Booking.CreateBooking)
		api.GET("/reservations/:bookingID", hb.Booking.GetBooking)
		api.PATCH("/reservations/:bookingID", hb.Booking.ModifyBooking)
		api.DELETE("/reservations/:bookingID", hb.Booking.CancelBooking)
		api.POST("/reservations/:bookingID/payments", hb.Booking.RecordPayment)
		api.GET("/booking-url", hb.Booking.BookingURL)
		api.GET("/property", hb.Booking.PropertyInfo)
		api.GET("/payment-methods", hb.Booking.PaymentMethods)
		api.GET("/rate-plans", hb.Booking.RatePlans)
		api.GET("/features", hb.Booking.Features)
	}
}

// RegisterRoomRoutes registers the mapping diagnostics endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/rooms/:hotelID")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/mapped", hb.Rooms.MappedRooms)
		api.GET("/mapping-stats", hb.Rooms.MappingStats)
		api.GET("/mapping-validation", hb.Rooms.ValidateMapping)
		api.POST("/suggest", hb.Rooms.SuggestMatch)
	}
}

// RegisterAdminRoutes registers the admin token exchange.
func RegisterAdminRoutes(r *gin.Engine) {
	r.POST("/api/admin/token", handlers.AdminTokenHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.CheckHealth(utils.GetContentCacheClient()))
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterAdminRoutes(r)
	RegisterHealthRoute(r)
}
