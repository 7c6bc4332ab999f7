// File: legalaid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalaid/config"
	"legalaid/cron"
	"legalaid/database"
	directoryRepoPkg "legalaid/database/repository/directory"
	lawyerRepoPkg "legalaid/database/repository/lawyer"
	ngoRepoPkg "legalaid/database/repository/ngo"
	"legalaid/handlers"
	"legalaid/routes"
	"legalaid/services/admin"
	"legalaid/services/directory"
	"legalaid/services/geocode"
	"legalaid/services/lawyer"
	"legalaid/services/ngo"
	"legalaid/services/storage"
	"legalaid/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageService, err := storage.NewStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	listingRepo := directoryRepoPkg.NewMongoDirectoryRepo()
	lwRepo := lawyerRepoPkg.NewMongoLawyerRepo()
	orgRepo := ngoRepoPkg.NewMongoNGORepo()

	if r, ok := listingRepo.(*directoryRepoPkg.MongoDirectoryRepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure directory indexes: %v", err)
		}
	}
	if r, ok := lwRepo.(*lawyerRepoPkg.MongoLawyerRepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure lawyer indexes: %v", err)
		}
	}
	if r, ok := orgRepo.(*ngoRepoPkg.MongoNGORepo); ok {
		if err := r.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure ngo indexes: %v", err)
		}
	}

	// services.
	directoryService := &directory.DefaultDirectoryService{
		Listings: listingRepo,
		Lawyers:  lwRepo,
		NGOs:     orgRepo,
		Cache:    utils.GetCacheClient(),
	}
	geocoder := geocode.NewGeocoder()
	lawyerService := &lawyer.DefaultLawyerService{
		Repo:      lwRepo,
		Directory: directoryService,
		Geocoder:  geocoder,
	}
	ngoService := &ngo.DefaultNGOService{
		Repo:      orgRepo,
		Directory: directoryService,
		Geocoder:  geocoder,
	}
	adminService := &admin.DefaultAdminService{
		Lawyers:    lwRepo,
		NGOs:       orgRepo,
		Directory:  directoryService,
		TaskClient: cron.NewTaskClient(),
	}

	// Background import worker and recurring registry sync.
	cron.InitImportWorker(adminService)
	cron.InitImportScheduler()

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Lawyer:    handlers.NewLawyerHandler(lawyerService),
		NGO:       handlers.NewNGOHandler(ngoService),
		Directory: handlers.NewDirectoryHandler(directoryService),
		Admin:     handlers.NewAdminHandler(adminService),
		Storage:   handlers.NewStorageHandler(storageService),

		LawyerRepo: lwRepo,
		NGORepo:    orgRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
