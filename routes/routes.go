package routes

import (
	"net/http"
	"time"

	"github.com/chrisdemonxxx/godrive/handlers"
	"github.com/chrisdemonxxx/godrive/middleware"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers authentication, profile and KYC endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/auth/initiate", hb.User.InitiateAuth)
		api.POST("/auth/verify", hb.User.VerifyAuth)
		api.POST("/auth/admin", hb.User.AdminLogin)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetProfile)
		api.PATCH("/me", hb.User.UpdateProfile)
		api.POST("/me/become-host", hb.User.BecomeHost)
		api.POST("/me/logout", hb.User.Logout)
		api.DELETE("/me", hb.User.Deactivate)

		api.POST("/me/documents", hb.User.SubmitDocument)
		api.GET("/me/documents", hb.User.ListDocuments)
	}
}

// RegisterCarRoutes registers search, listing and calendar endpoints.
func RegisterCarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cars")
	{
		// Public browse endpoints.
		api.GET("/search", hb.Car.Search)
		api.GET("/:id", hb.Car.GetCar)
		api.GET("/:id/calendar", hb.Availability.GetCalendar)
		api.GET("/:id/reviews", hb.Review.ForCar)

		// Host endpoints.
		host := api.Group("")
		host.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireHost(hb.UserRepo))
		host.POST("", hb.Car.CreateCar)
		host.GET("/mine", hb.Car.MyCars)
		host.PUT("/:id", hb.Car.UpdateCar)
		host.POST("/:id/submit", hb.Car.SubmitForApproval)
		host.POST("/:id/active", hb.Car.SetActive)
		host.POST("/:id/images", hb.Car.AddImage)
		host.DELETE("/:id/images/:imageId", hb.Car.RemoveImage)
		host.POST("/:id/calendar/block", hb.Availability.BlockDates)
		host.POST("/:id/calendar/unblock", hb.Availability.UnblockDates)
		host.POST("/:id/calendar/rate", hb.Availability.SetCustomRate)
	}
}

// RegisterBookingRoutes registers the rental flow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/quote", hb.Booking.Quote)
		api.POST("", hb.Booking.Create)
		api.GET("/mine", hb.Booking.MyBookings)
		api.GET("/:id", hb.Booking.Get)
		api.POST("/:id/payment", hb.Booking.SubmitPayment)
		api.POST("/:id/cancel", hb.Booking.Cancel)

		host := api.Group("")
		host.Use(middleware.RequireHost(hb.UserRepo))
		host.GET("/host", hb.Booking.HostBookings)
		host.POST("/:id/host-cancel", hb.Booking.HostCancel)
		host.POST("/:id/start", hb.Booking.StartTrip)
		host.POST("/:id/complete", hb.Booking.CompleteTrip)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/user/:id", hb.Review.ForUser)

		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.Review.Submit)
	}
}

// RegisterNotificationRoutes registers in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.Notifications.List)
		api.POST("/:id/read", hb.Notifications.MarkRead)
		api.POST("/read-all", hb.Notifications.MarkAllRead)
	}
}

// RegisterPayoutRoutes registers the host payout endpoints.
func RegisterPayoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payouts")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireHost(hb.UserRepo))
		api.GET("/mine", hb.Payout.MyPayouts)
	}
}

// RegisterAdminRoutes registers moderation, verification and dashboard
// endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireAdmin(hb.UserRepo))
		api.GET("/payments/pending", hb.Admin.PendingPayments)
		api.POST("/payments/:id/verify", hb.Admin.VerifyPayment)

		api.GET("/documents/pending", hb.Admin.PendingDocuments)
		api.POST("/documents/:id/review", hb.Admin.ReviewDocument)

		api.POST("/cars/:id/approve", hb.Admin.ApproveCar)
		api.POST("/cars/:id/reject", hb.Admin.RejectCar)
		api.POST("/cars/:id/suspend", hb.Admin.SuspendCar)

		api.POST("/payouts", hb.Admin.CreatePayout)
		api.GET("/payouts", hb.Payout.ByStatus)

		api.POST("/reviews/:id/flag", hb.Review.Flag)
		api.POST("/reviews/:id/unflag", hb.Review.Unflag)

		api.GET("/users", hb.Admin.Users)
		api.GET("/bookings", hb.Admin.Bookings)
		api.GET("/stats", hb.Admin.Stats)
	}
}

// RegisterGeoRoutes registers geocoding endpoints.
func RegisterGeoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geo")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/geocode", handlers.GeocodeAddress)
		api.GET("/reverse", handlers.ReverseGeocode)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCarRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterPayoutRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterGeoRoutes(r, hb)
	RegisterHealthRoute(r)
}
