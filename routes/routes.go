package routes

import (
	"time"

	"legalaid/handlers"
	"legalaid/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLawyerRoutes registers lawyer endpoints.
func RegisterLawyerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyers")
	{
		api.POST("/register", hb.Lawyer.RegisterHandler)
		api.POST("/login", hb.Lawyer.LoginHandler)
		api.GET("/id/:id", hb.Lawyer.GetLawyerByIDHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthLawyerMiddleware(hb.LawyerRepo))
		protected.PUT("/update/:id", hb.Lawyer.UpdateLawyerHandler)
		protected.DELETE("/delete/:id", hb.Lawyer.DeleteLawyerHandler)
		protected.POST("/documents/:bucket", hb.Storage.UploadDocumentHandler)
	}
}

// RegisterNGORoutes registers NGO endpoints.
func RegisterNGORoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ngos")
	{
		api.POST("/register", hb.NGO.RegisterHandler)
		api.POST("/login", hb.NGO.LoginHandler)
		api.GET("/id/:id", hb.NGO.GetNGOByIDHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthNGOMiddleware(hb.NGORepo))
		protected.PUT("/update/:id", hb.NGO.UpdateNGOHandler)
		protected.DELETE("/delete/:id", hb.NGO.DeleteNGOHandler)
		protected.POST("/documents/:bucket", hb.Storage.UploadDocumentHandler)
	}
}

// RegisterDirectoryRoutes registers the public directory search endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.GET("/search", hb.Directory.SearchHandler)
		api.GET("/id/:id", hb.Directory.GetListingHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/lawyers/pending", hb.Admin.GetPendingLawyersHandler)
		adminGroup.GET("/ngos/pending", hb.Admin.GetPendingNGOsHandler)
		adminGroup.PUT("/lawyers/:id/approve", hb.Admin.ApproveLawyerHandler)
		adminGroup.PUT("/ngos/:id/approve", hb.Admin.ApproveNGOHandler)
		adminGroup.POST("/imports/:source", hb.Admin.ImportSourceHandler)
		adminGroup.POST("/imports/:source/upload", hb.Admin.ImportUploadHandler)
		adminGroup.POST("/directory/upload", hb.Admin.UploadDirectoryCSVHandler)
		adminGroup.GET("/storage/:bucket/url", hb.Storage.SecureDownloadURLHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterLawyerRoutes(r, hb)
	RegisterNGORoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
