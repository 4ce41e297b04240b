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

	cancelBookingHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/cancel_booking"
	createBoatHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/create_boat"
	createBookingHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/create_booking"
	deleteBoatHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/delete_boat"
	deleteBookingHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/get_availability"
	getBoatHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/get_boat"
	getBookingHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/get_booking"
	listBoatsHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/list_boats"
	listBookingsHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/list_bookings"
	updateBoatHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/update_boat"
	updateBookingStatusHandler "github.com/m04kA/BRM-RentalService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/BRM-RentalService/internal/api/middleware"
	"github.com/m04kA/BRM-RentalService/internal/config"
	boatRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/boat"
	bookingRepo "github.com/m04kA/BRM-RentalService/internal/infra/storage/booking"
	companyServiceClient "github.com/m04kA/BRM-RentalService/internal/integrations/companyservice"
	boatsService "github.com/m04kA/BRM-RentalService/internal/service/boats"
	bookingsService "github.com/m04kA/BRM-RentalService/internal/service/bookings"
	createBookingUC "github.com/m04kA/BRM-RentalService/internal/usecase/create_booking"
	getBoatCalendarUC "github.com/m04kA/BRM-RentalService/internal/usecase/get_boat_calendar"
	searchBoatsUC "github.com/m04kA/BRM-RentalService/internal/usecase/search_available_boats"
	"github.com/m04kA/BRM-RentalService/pkg/dbmetrics"
	"github.com/m04kA/BRM-RentalService/pkg/logger"
	"github.com/m04kA/BRM-RentalService/pkg/metrics"
	"github.com/m04kA/BRM-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/BRM-RentalService/pkg/txmanager"
)

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

	log.Info("Starting BRM-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент CompanyService
	companyClient := companyServiceClient.NewClient(
		cfg.CompanyService.URL,
		time.Duration(cfg.CompanyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CompanyService=%s timeout=%ds)",
		cfg.CompanyService.URL, cfg.CompanyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		boatRepository    *boatRepo.Repository
		txMgr             createBookingUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		boatRepository = boatRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		boatRepository = boatRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		boatRepository,
		companyClient,
		log,
	)
	boatSvc := boatsService.NewService(
		boatRepository,
		companyClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		boatRepository,
		txMgr,
		log,
	)
	getBoatCalendarUseCase := getBoatCalendarUC.NewUseCase(
		bookingRepository,
		boatRepository,
		log,
	)
	searchBoatsUseCase := searchBoatsUC.NewUseCase(
		boatRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getBoatCalendarUseCase, searchBoatsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createBoat := createBoatHandler.NewHandler(boatSvc, log)
	getBoat := getBoatHandler.NewHandler(boatSvc, log)
	listBoats := listBoatsHandler.NewHandler(boatSvc, searchBoatsUseCase, log)
	updateBoat := updateBoatHandler.NewHandler(boatSvc, log)
	deleteBoat := deleteBoatHandler.NewHandler(boatSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность: календарь лодки или поиск свободных лодок на интервал
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Каталог лодок
	api.HandleFunc("/boats", listBoats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/boats/{boatId}", getBoat.Handle).Methods(http.MethodGet)

	// Создание бронирования (клиентская операция, без аккаунта)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление парком (для менеджеров) ---
	protected.HandleFunc("/boats", createBoat.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/boats/{boatId}", updateBoat.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/boats/{boatId}", deleteBoat.Handle).Methods(http.MethodDelete)

	// --- Управление бронированиями (для менеджеров) ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
