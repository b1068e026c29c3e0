package routes

import (
	"net/http"
	"time"

	"bokaenkelt/handlers"
	"bokaenkelt/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking endpoints. Guest bookings and the
// booked-slot view are public; everything else requires a token.
func RegisterBookingRoutes(r *gin.Engine, auth middleware.TokenHashSources) {
	api := r.Group("/api/bookings")
	{
		api.POST("/guest", handlers.CreateGuestBooking)
		api.POST("/bookedSlots", handlers.BookedSlots)

		api.POST("", middleware.JWTAuth(auth, "customer"), handlers.CreateBooking)
		api.GET("/stylist", middleware.JWTAuth(auth, "stylist"), handlers.ListStylistBookings)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(auth))
		protected.GET("", handlers.ListBookings)
		protected.GET("/:id", handlers.GetBooking)
		protected.PUT("/:id", handlers.UpdateBooking)
		protected.DELETE("/:id", handlers.CancelBooking)
	}
}

// RegisterStylistRoutes sets up stylist endpoints.
func RegisterStylistRoutes(r *gin.Engine, auth middleware.TokenHashSources) {
	api := r.Group("/api/stylists")
	{
		api.POST("", handlers.RegisterStylist)
		api.POST("/login", handlers.LoginStylist)
		api.GET("", handlers.ListStylists)
		api.GET("/:id", handlers.GetStylist)
		api.GET("/:id/slots", handlers.StylistDaySlots)

		api.PUT("/:id", middleware.JWTAuth(auth, "stylist", "superadmin"), handlers.UpdateStylist)
		api.DELETE("/:id", middleware.JWTAuth(auth, "superadmin"), handlers.AdminDeactivateStylist)
	}
}

// RegisterCustomerRoutes sets up customer account endpoints.
func RegisterCustomerRoutes(r *gin.Engine, auth middleware.TokenHashSources) {
	api := r.Group("/api/users")
	{
		api.POST("/register", handlers.RegisterCustomer)
		api.POST("/login", handlers.LoginCustomer)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(auth, "customer"))
		protected.GET("/me", handlers.GetCustomerProfile)
		protected.PUT("/me", handlers.UpdateCustomerProfile)
	}
}

// RegisterRatingRoutes sets up rating endpoints. The guest submission path is
// public so customers can review after their appointment without an account.
func RegisterRatingRoutes(r *gin.Engine, auth middleware.TokenHashSources) {
	api := r.Group("/api/ratings")
	{
		api.POST("/guest", handlers.SubmitRating)
		api.GET("/stylist/:id", handlers.ListStylistRatings)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(auth))
		protected.POST("", handlers.SubmitRating)
		protected.GET("", handlers.ListRatings)
	}
}

// RegisterAdminRoutes sets up super-admin endpoints.
func RegisterAdminRoutes(r *gin.Engine, auth middleware.TokenHashSources) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", handlers.LoginAdmin)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(auth, "superadmin"))
		protected.GET("/stylists", handlers.AdminListStylists)
		protected.POST("/stylists", handlers.AdminCreateStylist)
		protected.DELETE("/stylists/:id", handlers.AdminDeactivateStylist)
		protected.GET("/customers", handlers.AdminListCustomers)
		protected.GET("/bookings", handlers.AdminListBookings)
	}
}

// RegisterStorageRoutes sets up media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, auth middleware.TokenHashSources) {
	api := r.Group("/api/storage")
	{
		api.GET("/url/:publicId", handlers.GetImageURL)
		api.POST("/upload", middleware.JWTAuth(auth, "stylist"), handlers.UploadStylistPhoto)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BokaEnkelt"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, auth middleware.TokenHashSources) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, auth)
	RegisterStylistRoutes(r, auth)
	RegisterCustomerRoutes(r, auth)
	RegisterRatingRoutes(r, auth)
	RegisterAdminRoutes(r, auth)
	RegisterStorageRoutes(r, auth)
}
