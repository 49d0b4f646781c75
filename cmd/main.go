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

	closeDayHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/close_day"
	createVenueHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_venue"
	duplicateScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/duplicate_schedule"
	getDayScheduleHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_schedule"
	getVenueHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_venue"
	makeDayPrimeHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/make_day_prime"
	markDaySoldOutHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/mark_day_sold_out"
	resolveSlotHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/resolve_slot"
	updateSlotHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_slot"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	overrideRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/override"
	templateRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/template"
	venueRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/venue"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	venuesService "github.com/m04kA/SMC-ScheduleService/internal/service/venues"
	closeDayUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/close_day"
	createVenueUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_venue"
	duplicateScheduleUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_schedule"
	makeDayPrimeUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/make_day_prime"
	markDaySoldOutUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/mark_day_sold_out"
	resolveSlotUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/resolve_slot"
	updateSlotUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_slot"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
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

	log.Info("Starting SMC-ScheduleService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		venueRepository    *venueRepo.Repository
		templateRepository *templateRepo.Repository
		overrideRepository *overrideRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		venueRepository = venueRepo.NewRepository(wrappedDB)
		templateRepository = templateRepo.NewRepository(wrappedDB)
		overrideRepository = overrideRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		venueRepository = venueRepo.NewRepository(db)
		templateRepository = templateRepo.NewRepository(db)
		overrideRepository = overrideRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	venuesSvc := venuesService.NewService(venueRepository, log)
	scheduleSvc := scheduleService.NewService(venueRepository, templateRepository, overrideRepository, log)

	// Инициализируем use cases
	createVenueUseCase := createVenueUC.NewUseCase(venueRepository, templateRepository, txMgr, log)
	resolveSlotUseCase := resolveSlotUC.NewUseCase(venueRepository, templateRepository, overrideRepository, log)
	updateSlotUseCase := updateSlotUC.NewUseCase(venueRepository, templateRepository, scheduleSvc, txMgr, log)
	closeDayUseCase := closeDayUC.NewUseCase(venueRepository, templateRepository, overrideRepository, txMgr, log)
	makeDayPrimeUseCase := makeDayPrimeUC.NewUseCase(venueRepository, templateRepository, overrideRepository, txMgr, log)
	markDaySoldOutUseCase := markDaySoldOutUC.NewUseCase(venueRepository, templateRepository, overrideRepository, txMgr, log)
	duplicateScheduleUseCase := duplicateScheduleUC.NewUseCase(venueRepository, templateRepository, txMgr, log)

	// Инициализируем handlers
	createVenue := createVenueHandler.NewHandler(createVenueUseCase, log)
	getVenue := getVenueHandler.NewHandler(venuesSvc, log)
	resolveSlot := resolveSlotHandler.NewHandler(resolveSlotUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(scheduleSvc, log)
	updateSlot := updateSlotHandler.NewHandler(updateSlotUseCase, log)
	closeDay := closeDayHandler.NewHandler(closeDayUseCase, log)
	makeDayPrime := makeDayPrimeHandler.NewHandler(makeDayPrimeUseCase, log)
	markDaySoldOut := markDaySoldOutHandler.NewHandler(markDaySoldOutUseCase, log)
	duplicateSchedule := duplicateScheduleHandler.NewHandler(duplicateScheduleUseCase, log)

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

	// Карточка заведения
	api.HandleFunc("/venues/{venueId}", getVenue.Handle).Methods(http.MethodGet)

	// Резолв эффективного состояния слота
	api.HandleFunc("/venues/{venueId}/slots/resolve", resolveSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание заведения с дефолтной матрицей расписания
	protected.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)

	// --- Еженедельный шаблон ---
	// Сетка расписания для редактора
	protected.HandleFunc("/venues/{venueId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Правка строки шаблона (одной или wildcard по всем размерам)
	protected.HandleFunc("/venues/{venueId}/schedule/slot", updateSlot.Handle).Methods(http.MethodPut)

	// Копирование матрицы столов на другие дни недели
	protected.HandleFunc("/venues/{venueId}/schedule/duplicate", duplicateSchedule.Handle).Methods(http.MethodPost)

	// --- Датные bulk-операции ---
	// Закрытие дня
	protected.HandleFunc("/venues/{venueId}/days/{date}/close", closeDay.Handle).Methods(http.MethodPost)

	// Перевод дня в prime
	protected.HandleFunc("/venues/{venueId}/days/{date}/prime", makeDayPrime.Handle).Methods(http.MethodPost)

	// Пометка дня как распроданного
	protected.HandleFunc("/venues/{venueId}/days/{date}/sold-out", markDaySoldOut.Handle).Methods(http.MethodPost)

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
