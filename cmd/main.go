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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	calculatePriceHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/create_booking"
	createUnavailabilityHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/create_unavailability"
	deleteBookingHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/delete_booking"
	deleteUnavailabilityHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/delete_unavailability"
	getBoatBookingsHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/get_boat_bookings"
	getBookingHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/get_booking"
	getUnavailabilityHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/get_unavailability"
	updateBookingHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/velmare/Nautic-BookingService/internal/api/handlers/update_booking_status"
	"github.com/velmare/Nautic-BookingService/internal/api/middleware"
	"github.com/velmare/Nautic-BookingService/internal/config"
	bookingRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/booking"
	fleetRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/fleet"
	unavailRepo "github.com/velmare/Nautic-BookingService/internal/infra/storage/unavailability"
	"github.com/velmare/Nautic-BookingService/internal/integrations/notifier"
	bookingsService "github.com/velmare/Nautic-BookingService/internal/service/bookings"
	unavailabilityService "github.com/velmare/Nautic-BookingService/internal/service/unavailability"
	calculatePriceUC "github.com/velmare/Nautic-BookingService/internal/usecase/calculate_price"
	checkAvailabilityUC "github.com/velmare/Nautic-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/velmare/Nautic-BookingService/internal/usecase/create_booking"
	updateBookingUC "github.com/velmare/Nautic-BookingService/internal/usecase/update_booking"
	"github.com/velmare/Nautic-BookingService/pkg/dbmetrics"
	"github.com/velmare/Nautic-BookingService/pkg/logger"
	"github.com/velmare/Nautic-BookingService/pkg/metrics"
	"github.com/velmare/Nautic-BookingService/pkg/simpletxmanager"
	"github.com/velmare/Nautic-BookingService/pkg/txmanager"
)

// nopNotifier подменяет клиента уведомлений, когда нотификатор выключен
type nopNotifier struct{}

func (nopNotifier) SendBookingEventWithGracefulDegradation(context.Context, *notifier.BookingEvent) error {
	return nil
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Nautic-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент сервиса уведомлений
	var notifierClient interface {
		SendBookingEventWithGracefulDegradation(ctx context.Context, event *notifier.BookingEvent) error
	}
	if cfg.Notifier.Enabled {
		notifierClient = notifier.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		notifierClient = nopNotifier{}
		log.Info("Notifier disabled, booking events will not be sent")
	}

	// Инициализируем репозитории (с метриками или без)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	var (
		bookingRepository *bookingRepo.Repository
		fleetRepository   *fleetRepo.Repository
		unavailRepository *unavailRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		fleetRepository = fleetRepo.NewRepository(wrappedDB)
		unavailRepository = unavailRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		fleetRepository = fleetRepo.NewRepository(db)
		unavailRepository = unavailRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, notifierClient, log)
	unavailSvc := unavailabilityService.NewService(unavailRepository, fleetRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		unavailRepository,
		fleetRepository,
		log,
	)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		fleetRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		unavailRepository,
		fleetRepository,
		notifierClient,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		unavailRepository,
		fleetRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getBoatBookings := getBoatBookingsHandler.NewHandler(bookingSvc, log)
	createUnavailability := createUnavailabilityHandler.NewHandler(unavailSvc, log)
	getUnavailability := getUnavailabilityHandler.NewHandler(unavailSvc, log)
	deleteUnavailability := deleteUnavailabilityHandler.NewHandler(unavailSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности лодки на дату и слот
	api.HandleFunc("/boats/{boatId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Расчет цены для лодки, услуги, даты и числа пассажиров
	api.HandleFunc("/boats/{boatId}/price", calculatePrice.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Календарь лодки ---
	protected.HandleFunc("/boats/{boatId}/bookings", getBoatBookings.Handle).Methods(http.MethodGet)

	// --- Окна недоступности ---
	protected.HandleFunc("/boats/{boatId}/unavailability", createUnavailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/boats/{boatId}/unavailability", getUnavailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/unavailability/{windowId}", deleteUnavailability.Handle).Methods(http.MethodDelete)

	// CORS для админки
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderUserID}),
	)(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
