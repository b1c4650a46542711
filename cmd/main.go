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
	"github.com/redis/go-redis/v9"

	bookAppointmentHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/book_appointment"
	clearAppointmentHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/clear_appointment"
	dragBlockHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/drag_block"
	getCalendarHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/get_calendar"
	getDayHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/get_day"
	getDayValidationHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/get_day_validation"
	insertBlockHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/insert_block"
	moveBlockHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/move_block"
	moveMandatoryBreakHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/move_mandatory_break"
	moveOptionalBreakHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/move_optional_break"
	previewMoveHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/preview_move"
	removeBlockHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/remove_block"
	setAppointmentStatusHandler "github.com/m04kA/SMC-DayBoard/internal/api/handlers/set_appointment_status"
	"github.com/m04kA/SMC-DayBoard/internal/api/middleware"
	"github.com/m04kA/SMC-DayBoard/internal/config"
	"github.com/m04kA/SMC-DayBoard/internal/infra/lock"
	scheduleRepo "github.com/m04kA/SMC-DayBoard/internal/infra/storage/schedule"
	userServiceClient "github.com/m04kA/SMC-DayBoard/internal/integrations/userservice"
	dayboardService "github.com/m04kA/SMC-DayBoard/internal/service/dayboard"
	editDayUC "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"
	"github.com/m04kA/SMC-DayBoard/pkg/dbmetrics"
	"github.com/m04kA/SMC-DayBoard/pkg/logger"
	"github.com/m04kA/SMC-DayBoard/pkg/metrics"
	"github.com/m04kA/SMC-DayBoard/pkg/txmanager"
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

	log.Info("Starting SMC-DayBoard...")

	// Метрики (если включены); nil-коллектор безопасен для всех Record*
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Обертка над *sql.DB: executor из контекста транзакции и метрики запросов
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Блокировка изменений дня
	var locker editDayUC.Locker
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancelPing()

		locker = lock.NewRedisLocker(redisClient, log)
		log.Info("Redis day locks enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		locker = lock.NewLocalLocker()
		log.Warn("Redis disabled: day locks are process-local")
	}

	// Интеграционные клиенты
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Сервисы и use cases
	dayboardSvc := dayboardService.NewService(
		scheduleRepository,
		cfg.Schedule.DefaultMandatoryBreakPosition,
		log,
	)

	editDayUseCase := editDayUC.NewUseCase(
		scheduleRepository,
		locker,
		txMgr,
		metricsCollector,
		cfg.Schedule.DefaultMandatoryBreakPosition,
		time.Duration(cfg.Schedule.LockTTLSeconds)*time.Second,
		log,
	)

	// Handlers
	getDay := getDayHandler.NewHandler(dayboardSvc, log)
	getDayValidation := getDayValidationHandler.NewHandler(dayboardSvc, log)
	getCalendar := getCalendarHandler.NewHandler(dayboardSvc, log)
	previewMove := previewMoveHandler.NewHandler(dayboardSvc, log)

	moveBlock := moveBlockHandler.NewHandler(editDayUseCase, log)
	dragBlock := dragBlockHandler.NewHandler(editDayUseCase, log)
	insertBlock := insertBlockHandler.NewHandler(editDayUseCase, log)
	removeBlock := removeBlockHandler.NewHandler(editDayUseCase, log)
	moveMandatoryBreak := moveMandatoryBreakHandler.NewHandler(editDayUseCase, log)
	moveOptionalBreak := moveOptionalBreakHandler.NewHandler(editDayUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(editDayUseCase, log)
	setAppointmentStatus := setAppointmentStatusHandler.NewHandler(editDayUseCase, log)
	clearAppointment := clearAppointmentHandler.NewHandler(editDayUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// ============================================================
	// READ ROUTES (требуют X-User-ID header)
	// ============================================================

	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}", getDay.Handle).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}/validation", getDayValidation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/days/{date}/moves/preview", previewMove.Handle).Methods(http.MethodPost)

	// ============================================================
	// MUTATION ROUTES (X-User-ID + право на изменение даты)
	// ============================================================

	days := api.PathPrefix("/days/{date}").Subrouter()
	days.Use(middleware.DateAccess(userClient, log))

	// --- Порядок блоков ---
	days.HandleFunc("/moves", moveBlock.Handle).Methods(http.MethodPost)
	days.HandleFunc("/drags", dragBlock.Handle).Methods(http.MethodPost)
	days.HandleFunc("/blocks", insertBlock.Handle).Methods(http.MethodPost)
	days.HandleFunc("/blocks/{blockId}", removeBlock.Handle).Methods(http.MethodDelete)

	// --- Перерывы ---
	// mandatory регистрируется раньше {blockId}
	days.HandleFunc("/breaks/mandatory", moveMandatoryBreak.Handle).Methods(http.MethodPut)
	days.HandleFunc("/breaks/{blockId}", moveOptionalBreak.Handle).Methods(http.MethodPut)

	// --- Записи ---
	days.HandleFunc("/slots/{blockId}/appointment", bookAppointment.Handle).Methods(http.MethodPut)
	days.HandleFunc("/slots/{blockId}/appointment", clearAppointment.Handle).Methods(http.MethodDelete)
	days.HandleFunc("/slots/{blockId}/appointment/status", setAppointmentStatus.Handle).Methods(http.MethodPatch)

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
