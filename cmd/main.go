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

	cancelBookingHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/create_booking"
	getAvailabilityRulesHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_availability_rules"
	getBookingHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_booking"
	getDayCalendarHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_day_calendar"
	getDayConfigHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_day_config"
	getDaySlotsHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_day_slots"
	getDaySummaryHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_day_summary"
	getOfferNextSlotHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_offer_next_slot"
	getPlaceBookingsHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_place_bookings"
	getPlaceNextSlotHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/get_place_next_slot"
	toggleBlockedDateHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/toggle_blocked_date"
	updateAvailabilityRulesHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/update_availability_rules"
	updateDayConfigHandler "github.com/damianGG/EnjoyHubAI-sub001/internal/api/handlers/update_day_config"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/api/middleware"
	"github.com/damianGG/EnjoyHubAI-sub001/internal/config"
	availabilityRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/availability"
	bookingRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/booking"
	dayconfigRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/dayconfig"
	offerRepo "github.com/damianGG/EnjoyHubAI-sub001/internal/infra/storage/offer"
	notifierClient "github.com/damianGG/EnjoyHubAI-sub001/internal/integrations/notifier"
	availabilityService "github.com/damianGG/EnjoyHubAI-sub001/internal/service/availability"
	bookingsService "github.com/damianGG/EnjoyHubAI-sub001/internal/service/bookings"
	dayconfigService "github.com/damianGG/EnjoyHubAI-sub001/internal/service/dayconfig"
	createBookingUC "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/create_booking"
	getDayCalendarUC "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_calendar"
	getDaySlotsUC "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_slots"
	getDaySummaryUC "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_day_summary"
	getNextSlotUC "github.com/damianGG/EnjoyHubAI-sub001/internal/usecase/get_next_slot"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/dbmetrics"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/logger"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/metrics"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/simpletxmanager"
	"github.com/damianGG/EnjoyHubAI-sub001/pkg/txmanager"
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

	log.Info("Starting EnjoyHub booking service...")
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

	// Клиент сервиса уведомлений (опционален)
	var notifier *notifierClient.Client
	if cfg.Notifier.Enabled {
		notifier = notifierClient.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		offerRepository        *offerRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		bookingRepository      *bookingRepo.Repository
		dayconfigRepository    *dayconfigRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		offerRepository = offerRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		dayconfigRepository = dayconfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		offerRepository = offerRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		dayconfigRepository = dayconfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Отключенный notifier остаётся nil-интерфейсом
	var notifierForBookings bookingsService.NotifierClient
	var notifierForCreate createBookingUC.NotifierClient
	if notifier != nil {
		notifierForBookings = notifier
		notifierForCreate = notifier
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, notifierForBookings, log)
	availabilitySvc := availabilityService.NewService(offerRepository, availabilityRepository, txMgr, log)
	dayconfigSvc := dayconfigService.NewService(dayconfigRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		offerRepository,
		availabilityRepository,
		bookingRepository,
		notifierForCreate,
		txMgr,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(offerRepository, availabilityRepository, bookingRepository, log)
	getDaySummaryUseCase := getDaySummaryUC.NewUseCase(offerRepository, availabilityRepository, bookingRepository, log)
	getNextSlotUseCase := getNextSlotUC.NewUseCase(offerRepository, availabilityRepository, bookingRepository, log)
	getDayCalendarUseCase := getDayCalendarUC.NewUseCase(dayconfigRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	getDaySummary := getDaySummaryHandler.NewHandler(getDaySummaryUseCase, log)
	getOfferNextSlot := getOfferNextSlotHandler.NewHandler(getNextSlotUseCase, log)
	getPlaceNextSlot := getPlaceNextSlotHandler.NewHandler(getNextSlotUseCase, log)
	getDayCalendar := getDayCalendarHandler.NewHandler(getDayCalendarUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPlaceBookings := getPlaceBookingsHandler.NewHandler(bookingSvc, log)
	getAvailabilityRules := getAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	updateAvailabilityRules := updateAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	getDayConfig := getDayConfigHandler.NewHandler(dayconfigSvc, log)
	updateDayConfig := updateDayConfigHandler.NewHandler(dayconfigSvc, log)
	toggleBlockedDate := toggleBlockedDateHandler.NewHandler(dayconfigSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты оффера на дату
	api.HandleFunc("/offers/{offerId}/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Сводка доступности по диапазону дат
	api.HandleFunc("/offers/{offerId}/availability", getDaySummary.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот оффера
	api.HandleFunc("/offers/{offerId}/next-slot", getOfferNextSlot.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот площадки
	api.HandleFunc("/places/{placeId}/next-slot", getPlaceNextSlot.Handle).Methods(http.MethodGet)

	// Дневной календарь площадки (посуточная модель)
	api.HandleFunc("/places/{placeId}/day-calendar", getDayCalendar.Handle).Methods(http.MethodGet)

	// Создание бронирования (допускается анонимное)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/places/{placeId}/bookings", getPlaceBookings.Handle).Methods(http.MethodGet)

	// --- Правила доступности оффера ---
	protected.HandleFunc("/offers/{offerId}/availability", updateAvailabilityRules.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/offers/{offerId}/availability/rules", getAvailabilityRules.Handle).Methods(http.MethodGet)

	// --- Дневная модель площадки ---
	protected.HandleFunc("/places/{placeId}/day-config", getDayConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/places/{placeId}/day-config", updateDayConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/places/{placeId}/day-config/blocked-dates", toggleBlockedDate.Handle).Methods(http.MethodPatch)

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
