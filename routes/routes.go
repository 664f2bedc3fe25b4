package routes

import (
	"net/http"
	"time"

	"unicare/handlers"
	"unicare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerSet groups the endpoint handlers for registration.
type HandlerSet struct {
	Auth       *handlers.AuthHandler
	Doctors    *handlers.DoctorHandler
	Schedules  *handlers.ScheduleHandler
	Bookings   *handlers.BookingHandler
	Catalog    *handlers.CatalogHandler
	Engagement *handlers.EngagementHandler
}

// RegisterAuthRoutes registers registration, login and OTP endpoints.
func RegisterAuthRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hs.Auth.Register)
		api.POST("/login", hs.Auth.Login)
		api.POST("/request-otp", hs.Auth.RequestOTP)
		api.POST("/verify-otp", hs.Auth.VerifyOTP)

	}

	users := r.Group("/api/users")
	users.Use(middleware.JWTAuthMiddleware())
	{
		users.GET("/profile", hs.Auth.Profile)
	}
}

// RegisterDoctorRoutes registers public doctor browsing endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hs.Doctors.List)
		api.GET("/:id", hs.Doctors.Get)
		api.GET("/:id/availability", hs.Doctors.Availability)
		api.GET("/:id/rating", hs.Engagement.DoctorRating)
	}
}

// RegisterCatalogRoutes registers public catalog browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api")
	{
		api.GET("/medicines", hs.Catalog.ListMedicines)
		api.GET("/lab-tests", hs.Catalog.ListLabTests)
		api.GET("/lab-packages", hs.Catalog.ListLabPackages)
	}
}

// RegisterPatientRoutes registers authenticated patient endpoints.
func RegisterPatientRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/appointments", hs.Bookings.Book)
		api.GET("/appointments/my", hs.Bookings.MyAppointments)
		api.PUT("/appointments/:id/cancel", hs.Bookings.Cancel)

		api.POST("/medicines/order", hs.Catalog.PlaceMedicineOrder)
		api.GET("/medicines/orders", hs.Catalog.MyMedicineOrders)
		api.POST("/lab-tests/order", hs.Catalog.PlaceLabOrder)
		api.GET("/lab-tests/orders", hs.Catalog.MyLabOrders)

		api.GET("/notifications", hs.Engagement.MyNotifications)
		api.PUT("/notifications/:id/read", hs.Engagement.MarkNotificationRead)

		api.POST("/feedback", hs.Engagement.SubmitFeedback)
		api.GET("/medical-records/my", hs.Engagement.MyRecords)

		api.POST("/leaves", hs.Schedules.RequestLeave)
	}
}

// RegisterAdminRoutes registers admin-only management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hs *HandlerSet) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
	{
		api.GET("/patients", hs.Engagement.ListPatients)
		api.PUT("/patients/:id/approve", hs.Engagement.ApprovePatient)

		api.POST("/doctors", hs.Doctors.Create)
		api.PUT("/doctors/:id", hs.Doctors.Update)
		api.DELETE("/doctors/:id", hs.Doctors.Delete)
		api.PUT("/doctors/:id/status", hs.Doctors.UpdateStatus)

		api.POST("/doctor-schedule-template", hs.Schedules.CreateTemplate)
		api.GET("/doctor-schedule-templates", hs.Schedules.ListTemplates)
		api.DELETE("/doctor-schedule-template/:id", hs.Schedules.DeleteTemplate)
		api.POST("/generate-doctor-schedule", hs.Schedules.Generate)

		api.POST("/holidays", hs.Schedules.UpsertHoliday)
		api.GET("/holidays", hs.Schedules.ListHolidays)
		api.DELETE("/holidays/:id", hs.Schedules.DeleteHoliday)

		api.GET("/leaves", hs.Schedules.ListLeaves)
		api.PUT("/leaves/:id", hs.Schedules.DecideLeave)

		api.POST("/medicines", hs.Catalog.CreateMedicine)
		api.PUT("/medicines/:id", hs.Catalog.UpdateMedicine)
		api.POST("/lab-tests", hs.Catalog.CreateLabTest)
		api.POST("/lab-packages", hs.Catalog.CreateLabPackage)

		api.GET("/inventory", hs.Catalog.Inventory)
		api.POST("/inventory/adjust", hs.Catalog.AdjustStock)
		api.GET("/inventory/:id/ledger", hs.Catalog.StockLedger)

		api.PUT("/medicine-orders/:id/status", hs.Catalog.SetMedicineOrderStatus)
		api.PUT("/lab-orders/:id/status", hs.Catalog.SetLabOrderStatus)

		api.POST("/campaigns", hs.Engagement.CreateCampaign)
		api.GET("/campaigns", hs.Engagement.ListCampaigns)
		api.PUT("/campaigns/:id/launch", hs.Engagement.LaunchCampaign)
		api.DELETE("/campaigns/:id", hs.Engagement.DeleteCampaign)

		api.GET("/feedback", hs.Engagement.ListFeedback)

		api.POST("/medical-records", hs.Engagement.CreateRecord)
		api.GET("/patients/:id/medical-records", hs.Engagement.PatientRecords)

		api.PUT("/appointments/:id/complete", hs.Bookings.Complete)
		api.GET("/daily-bookings", hs.Bookings.DailyBookings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Unicare Polyclinic API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hs *HandlerSet) {
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
	RegisterAuthRoutes(r, hs)
	RegisterDoctorRoutes(r, hs)
	RegisterCatalogRoutes(r, hs)
	RegisterPatientRoutes(r, hs)
	RegisterAdminRoutes(r, hs)
}
