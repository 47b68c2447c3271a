package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveRequestHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/approve_request"
	createAssetHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/create_asset"
	createBookingHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/create_booking"
	createDriverHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/create_driver"
	deleteAssetHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/delete_asset"
	deleteBookingHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/delete_booking"
	deleteDriverHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/delete_driver"
	deleteRequestHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/delete_request"
	getBookingHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/get_booking"
	getRequestHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/get_request"
	listAssetsHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/list_assets"
	listBookingsHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/list_bookings"
	listDriversHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/list_drivers"
	listRequestsHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/list_requests"
	rejectRequestHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/reject_request"
	submitRequestHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/submit_request"
	updateAssetHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/update_asset"
	updateBookingHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/update_booking"
	updateDriverHandler "github.com/oniit/e-jadwal-public-web/internal/api/handlers/update_driver"
	"github.com/oniit/e-jadwal-public-web/internal/api/middleware"
	"github.com/oniit/e-jadwal-public-web/internal/config"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
	bookingRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/booking"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
	requestRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/request"
	"github.com/oniit/e-jadwal-public-web/internal/scheduling"
	assetsService "github.com/oniit/e-jadwal-public-web/internal/service/assets"
	bookingsService "github.com/oniit/e-jadwal-public-web/internal/service/bookings"
	driversService "github.com/oniit/e-jadwal-public-web/internal/service/drivers"
	requestsService "github.com/oniit/e-jadwal-public-web/internal/service/requests"
	approveRequestUC "github.com/oniit/e-jadwal-public-web/internal/usecase/approve_request"
	createBookingUC "github.com/oniit/e-jadwal-public-web/internal/usecase/create_booking"
	submitRequestUC "github.com/oniit/e-jadwal-public-web/internal/usecase/submit_request"
	updateBookingUC "github.com/oniit/e-jadwal-public-web/internal/usecase/update_booking"
	"github.com/oniit/e-jadwal-public-web/pkg/logger"
	"github.com/oniit/e-jadwal-public-web/pkg/metrics"
	"github.com/oniit/e-jadwal-public-web/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting e-jadwal booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	hours, err := scheduling.NewBusinessHours(cfg.Booking.Timezone, cfg.Booking.OpenTime, cfg.Booking.CloseTime)
	if err != nil {
		log.Fatal("Failed to configure business hours: %v", err)
	}
	log.Info("Business hours configured: %s", hours.Describe())

	txMgr := txmanager.NewTransactionManager(db)

	assetRepository := assetRepo.NewRepository(db)
	driverRepository := driverRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db, cfg.Booking.IDMaxAttempts)
	requestRepository := requestRepo.NewRepository(db, cfg.Booking.IDMaxAttempts)

	assetSvc := assetsService.NewService(assetRepository, log)
	driverSvc := driversService.NewService(driverRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	requestSvc := requestsService.NewService(requestRepository, txMgr, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, assetRepository, driverRepository, hours, txMgr, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository, assetRepository, driverRepository, hours, txMgr, log)
	submitRequestUseCase := submitRequestUC.NewUseCase(
		requestRepository, assetRepository, driverRepository, hours, txMgr, log)
	approveRequestUseCase := approveRequestUC.NewUseCase(
		requestRepository, bookingRepository, assetRepository, driverRepository, txMgr, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	submitRequest := submitRequestHandler.NewHandler(submitRequestUseCase, log)
	approveRequest := approveRequestHandler.NewHandler(approveRequestUseCase, log)
	rejectRequest := rejectRequestHandler.NewHandler(requestSvc, log)
	getRequest := getRequestHandler.NewHandler(requestSvc, log)
	listRequests := listRequestsHandler.NewHandler(requestSvc, log)
	deleteRequest := deleteRequestHandler.NewHandler(requestSvc, log)

	listAssets := listAssetsHandler.NewHandler(assetSvc, log)
	createAsset := createAssetHandler.NewHandler(assetSvc, log)
	updateAsset := updateAssetHandler.NewHandler(assetSvc, log)
	deleteAsset := deleteAssetHandler.NewHandler(assetSvc, log)

	listDrivers := listDriversHandler.NewHandler(driverSvc, log)
	createDriver := createDriverHandler.NewHandler(driverSvc, log)
	updateDriver := updateDriverHandler.NewHandler(driverSvc, log)
	deleteDriver := deleteDriverHandler.NewHandler(driverSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the schedule, the catalog, and request submission.
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/assets", listAssets.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drivers", listDrivers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/requests", submitRequest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

	// Administrative routes require a forwarded identity.
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth)

	admin.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/requests", listRequests.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{requestId}/approve", approveRequest.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/requests/{requestId}/reject", rejectRequest.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/requests/{requestId}", deleteRequest.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/assets", createAsset.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/assets/{assetCode}", updateAsset.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/assets/{assetCode}", deleteAsset.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/drivers", createDriver.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/drivers/{driverId}", updateDriver.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/drivers/{driverId}", deleteDriver.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
