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

	cancelReservationHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/cancel_reservation"
	createGuestReservationHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/create_guest_reservation"
	createReservationHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/get_available_slots"
	getGuestReservationHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/get_guest_reservation"
	getReservationHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/get_schedule"
	getStaffReservationsHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/get_staff_reservations"
	getStoreHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/get_store"
	getUserReservationsHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/get_user_reservations"
	updateReservationStatusHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/update_reservation_status"
	upsertScheduleHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/upsert_schedule"
	upsertStoreHandler "github.com/ymgn-dev/SLB-ReservationService/internal/api/handlers/upsert_store"
	"github.com/ymgn-dev/SLB-ReservationService/internal/api/middleware"
	"github.com/ymgn-dev/SLB-ReservationService/internal/config"
	reservationRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/reservation"
	scheduleRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/schedule"
	storeRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/store"
	directoryClient "github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
	reservationsService "github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations"
	schedulesService "github.com/ymgn-dev/SLB-ReservationService/internal/service/schedules"
	storesService "github.com/ymgn-dev/SLB-ReservationService/internal/service/stores"
	createReservationUC "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/get_available_slots"
	upsertScheduleUC "github.com/ymgn-dev/SLB-ReservationService/internal/usecase/upsert_schedule"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/dbmetrics"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/logger"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/metrics"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/simpletxmanager"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/txmanager"
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

	log.Info("Starting SLB-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// The salon operates in a single timezone configured as a fixed
	// UTC offset. Every civil-time/instant conversion goes through it.
	venue := time.FixedZone("venue", cfg.Venue.UTCOffsetMinutes*60)
	log.Info("Venue timezone set to UTC offset %+d minutes", cfg.Venue.UTCOffsetMinutes)

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	directory := directoryClient.NewClient(
		cfg.DirectoryService.URL,
		time.Duration(cfg.DirectoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)",
		cfg.DirectoryService.URL, cfg.DirectoryService.Timeout)

	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		storeRepository       *storeRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		storeRepository = storeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		storeRepository = storeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	reservationsSvc := reservationsService.NewService(reservationRepository, directory, log)
	schedulesSvc := schedulesService.NewService(scheduleRepository, log)
	storesSvc := storesService.NewService(storeRepository, directory, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		storeRepository,
		reservationRepository,
		venue,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		storeRepository,
		directory,
		txMgr,
		venue,
		&createReservationUC.RealTimeProvider{},
		log,
	)
	upsertScheduleUseCase := upsertScheduleUC.NewUseCase(
		scheduleRepository,
		directory,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createGuestReservation := createGuestReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getGuestReservation := getGuestReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getStaffReservations := getStaffReservationsHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(schedulesSvc, log)
	upsertSchedule := upsertScheduleHandler.NewHandler(upsertScheduleUseCase, log)
	getStore := getStoreHandler.NewHandler(storesSvc, log)
	upsertStore := upsertStoreHandler.NewHandler(storesSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes

	api.HandleFunc("/stores/{storeId}/staff/{staffId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	api.HandleFunc("/stores/{storeId}", getStore.Handle).Methods(http.MethodGet)

	api.HandleFunc("/staff/{staffId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	api.HandleFunc("/guest-reservations", createGuestReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/guest-reservations/{reservationNumber}", getGuestReservation.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/staff/{staffId}/reservations", getStaffReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/schedule", upsertSchedule.Handle).Methods(http.MethodPut)

	protected.HandleFunc("/stores/{storeId}", upsertStore.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
