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

	applyCouponHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/apply_coupon"
	cancelBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_booking"
	getDateBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_date_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	couponRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/coupon"
	ledgerRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/ledger"
	settingsRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/settings"
	venueServiceClient "github.com/m04kA/SMC-VenueBookingService/internal/integrations/venueservice"
	bookingsService "github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	ledgerService "github.com/m04kA/SMC-VenueBookingService/internal/service/ledger"
	applyCouponUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/apply_coupon"
	createBookingUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	getBookedSlotsUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_booked_slots"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/logger"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VenueBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-VenueBookingService...")
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

	// Инициализируем клиент сервиса площадок
	venueClient := venueServiceClient.NewClient(
		cfg.VenueService.URL,
		time.Duration(cfg.VenueService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VenueService=%s timeout=%ds)",
		cfg.VenueService.URL, cfg.VenueService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		ledgerRepository   *ledgerRepo.Repository
		couponRepository   *couponRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		ledgerRepository = ledgerRepo.NewRepository(wrappedDB)
		couponRepository = couponRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		ledgerRepository = ledgerRepo.NewRepository(db)
		couponRepository = couponRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем пересборщик журнала занятости и сервисы
	rebuilder := ledgerService.NewRebuilder(bookingRepository, ledgerRepository, log)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		ledgerRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	applyCouponUseCase := applyCouponUC.NewUseCase(couponRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ledgerRepository,
		couponRepository,
		settingsRepository,
		venueClient,
		rebuilder,
		applyCouponUseCase,
		txMgr,
		log,
	)

	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(
		ledgerRepository,
		settingsRepository,
		rebuilder,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getBookedSlotsUseCase, log)
	applyCoupon := applyCouponHandler.NewHandler(applyCouponUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getDateBookings := getDateBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Занятость слотов на дату
	api.HandleFunc("/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// Рекомендательная проверка купона
	api.HandleFunc("/coupons/validate", applyCoupon.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Обновление статуса бронирования (админка)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Бронирования на дату (админка)
	protected.HandleFunc("/dates/{date}/bookings", getDateBookings.Handle).Methods(http.MethodGet)

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
