package routes

import (
	"hospital-sales-server/internal/config"
	"hospital-sales-server/internal/handlers"
	"hospital-sales-server/internal/middleware"
	"hospital-sales-server/internal/models"
	"hospital-sales-server/internal/sheetstore"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, store *sheetstore.Store, sheetsClient *sheetstore.Client, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	recordHandler := handlers.NewRecordHandler(store, db)
	visitLogHandler := handlers.NewVisitLogHandler(db)
	geocodeHandler := handlers.NewGeocodeHandler(cfg)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(sheetsClient)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Hospital sales record routes. GET doubles as the recommendation
		// endpoint when field+value query parameters are present.
		recordRoutes := private.Group("/hospital-sales")
		{
			recordRoutes.GET("", recordHandler.GetRecords)
			recordRoutes.POST("", recordHandler.CreateRecord)
			recordRoutes.PUT("", recordHandler.UpdateRecord)
			recordRoutes.DELETE("", recordHandler.DeleteRecord)
			recordRoutes.GET("/:id/visit-logs", visitLogHandler.GetVisitLogsForHospital)
		}

		// Address geocoding proxy for the map view
		private.GET("/geocode", geocodeHandler.Geocode)

		// Backing store connectivity check
		private.GET("/sheets/test", diagnosticsHandler.TestSheetsConnection)

		// Account management routes (admin-only)
		userRoutes := private.Group("/users")
		userRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin)) // Only Admins
		{
			userRoutes.POST("", userHandler.CreateUser)
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/:id", userHandler.GetUserByID)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
