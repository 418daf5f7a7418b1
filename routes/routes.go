package routes

import (
	"net/http"
	"time"

	"docportal/handlers"
	"docportal/middleware"
	"docportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog/availability endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.Availability.GetAppointmentOptions)
	r.GET("/appointmentSpecialty", hb.Availability.GetSpecialties)
}

// RegisterBookingRoutes registers booking and payment endpoints. All of them
// require an authenticated patient.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/bookings", hb.Booking.ListBookings)
		api.GET("/bookings/:id", hb.Booking.GetBooking)
		api.POST("/bookings", hb.Booking.CreateBooking)
		api.POST("/create-payment-intent", hb.Payment.CreatePaymentIntent)
		api.POST("/payments", hb.Payment.ConfirmPayment)
	}
}

// RegisterUserRoutes registers user management and session-token endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Public: sign-in upsert and token issuance.
	r.POST("/users", hb.User.CreateUser)
	r.GET("/jwt", hb.User.IssueJWT)

	// Authenticated: a user may check its own role flag.
	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/users/admin/:email", hb.User.CheckAdmin)

	// Admin only.
	admin := r.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserRepo))
	admin.GET("/users", hb.User.ListUsers)
	admin.PUT("/users/admin/:id", hb.User.PromoteUser)
}

// RegisterDoctorRoutes registers roster management endpoints, admin only.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/doctors")
	{
		admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware(hb.UserRepo))
		admin.GET("", hb.Doctor.ListDoctors)
		admin.POST("", hb.Doctor.CreateDoctor)
		admin.DELETE("/:id", hb.Doctor.DeleteDoctor)
	}
}

// RegisterHealthRoutes registers the banner and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "doctors portal server is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
