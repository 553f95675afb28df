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

	addAvailabilityHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/add_availability"
	bookSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/book_session"
	cancelRegistrationHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/cancel_registration"
	cancelSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/cancel_session"
	createClassHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/create_class"
	deleteAvailabilityHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/delete_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_available_slots"
	getClassHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_class"
	getMemberScheduleHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_member_schedule"
	getTrainerScheduleHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/get_trainer_schedule"
	listAvailabilityHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/list_availability"
	listClassesHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/list_classes"
	registerForClassHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/register_for_class"
	rescheduleClassHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/reschedule_class"
	rescheduleSessionHandler "github.com/m04kA/SMC-GymService/internal/api/handlers/reschedule_session"
	"github.com/m04kA/SMC-GymService/internal/api/middleware"
	"github.com/m04kA/SMC-GymService/internal/config"
	"github.com/m04kA/SMC-GymService/internal/infra/locker"
	"github.com/m04kA/SMC-GymService/internal/infra/migrations"
	availabilityRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/availability"
	directoryRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/directory"
	classRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/fitnessclass"
	registrationRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/registration"
	sessionRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/session"
	availabilityService "github.com/m04kA/SMC-GymService/internal/service/availability"
	conflictsService "github.com/m04kA/SMC-GymService/internal/service/conflicts"
	schedulesService "github.com/m04kA/SMC-GymService/internal/service/schedules"
	addAvailabilityUC "github.com/m04kA/SMC-GymService/internal/usecase/add_availability"
	bookSessionUC "github.com/m04kA/SMC-GymService/internal/usecase/book_session"
	cancelRegistrationUC "github.com/m04kA/SMC-GymService/internal/usecase/cancel_registration"
	cancelSessionUC "github.com/m04kA/SMC-GymService/internal/usecase/cancel_session"
	createClassUC "github.com/m04kA/SMC-GymService/internal/usecase/create_class"
	getAvailableSlotsUC "github.com/m04kA/SMC-GymService/internal/usecase/get_available_slots"
	registerForClassUC "github.com/m04kA/SMC-GymService/internal/usecase/register_for_class"
	rescheduleClassUC "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_class"
	rescheduleSessionUC "github.com/m04kA/SMC-GymService/internal/usecase/reschedule_session"
	"github.com/m04kA/SMC-GymService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymService/pkg/logger"
	"github.com/m04kA/SMC-GymService/pkg/metrics"
	"github.com/m04kA/SMC-GymService/pkg/txmanager"
)

// resourceLocker общий интерфейс RedisLocker и NoopLocker
type resourceLocker interface {
	Lock(ctx context.Context, keys ...string) (locker.Unlock, error)
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

	log.Info("Starting SMC-GymService...")
	log.Info("Configuration loaded from config.toml")

	local, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load scheduling timezone: %v", err)
	}
	log.Info("Gym wall clock: %s", local)

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: обёртка БД и учет решений его пропускают
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.MigrationsPath != "" {
		if err := migrations.Up(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Блокировки ресурсов (тренер, зал, член клуба)
	var resourceLock resourceLocker = locker.NoopLocker{}
	if cfg.Locks.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Locks.RedisAddr,
			Password: cfg.Locks.Password,
			DB:       cfg.Locks.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Locks.RedisAddr, err)
		}
		cancelPing()

		resourceLock = locker.NewRedisLocker(redisClient, cfg.Locks.Prefix, cfg.Locks.TTL(), cfg.Locks.Wait(), log)
		log.Info("Redis resource locks enabled (addr=%s, ttl=%s, wait=%s)",
			cfg.Locks.RedisAddr, cfg.Locks.TTL(), cfg.Locks.Wait())
	}

	// Инициализируем репозитории
	directoryRepository := directoryRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	sessionRepository := sessionRepo.NewRepository(wrappedDB)
	classRepository := classRepo.NewRepository(wrappedDB)
	registrationRepository := registrationRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	conflictsSvc := conflictsService.NewService(sessionRepository, classRepository, log)
	availabilitySvc := availabilityService.NewService(directoryRepository, availabilityRepository, log)
	schedulesSvc := schedulesService.NewService(
		directoryRepository,
		sessionRepository,
		classRepository,
		registrationRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		directoryRepository,
		availabilityRepository,
		conflictsSvc,
		local,
		log,
	)
	bookSessionUseCase := bookSessionUC.NewUseCase(
		directoryRepository,
		availabilityRepository,
		sessionRepository,
		conflictsSvc,
		resourceLock,
		txMgr,
		local,
		log,
	)
	rescheduleSessionUseCase := rescheduleSessionUC.NewUseCase(
		directoryRepository,
		availabilityRepository,
		sessionRepository,
		conflictsSvc,
		resourceLock,
		txMgr,
		local,
		log,
	)
	cancelSessionUseCase := cancelSessionUC.NewUseCase(sessionRepository, txMgr, log)
	createClassUseCase := createClassUC.NewUseCase(
		directoryRepository,
		availabilityRepository,
		classRepository,
		conflictsSvc,
		resourceLock,
		txMgr,
		local,
		log,
	)
	rescheduleClassUseCase := rescheduleClassUC.NewUseCase(
		directoryRepository,
		availabilityRepository,
		classRepository,
		registrationRepository,
		conflictsSvc,
		resourceLock,
		txMgr,
		local,
		log,
	)
	registerForClassUseCase := registerForClassUC.NewUseCase(
		directoryRepository,
		classRepository,
		registrationRepository,
		conflictsSvc,
		resourceLock,
		txMgr,
		log,
	)
	cancelRegistrationUseCase := cancelRegistrationUC.NewUseCase(registrationRepository, txMgr, log)
	addAvailabilityUseCase := addAvailabilityUC.NewUseCase(
		directoryRepository,
		availabilityRepository,
		txMgr,
		local,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookSession := bookSessionHandler.NewHandler(bookSessionUseCase, metricsCollector, log)
	rescheduleSession := rescheduleSessionHandler.NewHandler(rescheduleSessionUseCase, metricsCollector, log)
	cancelSession := cancelSessionHandler.NewHandler(cancelSessionUseCase, metricsCollector, log)
	createClass := createClassHandler.NewHandler(createClassUseCase, metricsCollector, log)
	rescheduleClass := rescheduleClassHandler.NewHandler(rescheduleClassUseCase, metricsCollector, log)
	getClass := getClassHandler.NewHandler(schedulesSvc, log)
	listClasses := listClassesHandler.NewHandler(schedulesSvc, log)
	registerForClass := registerForClassHandler.NewHandler(registerForClassUseCase, metricsCollector, log)
	cancelRegistration := cancelRegistrationHandler.NewHandler(cancelRegistrationUseCase, metricsCollector, log)
	addAvailability := addAvailabilityHandler.NewHandler(addAvailabilityUseCase, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	getTrainerSchedule := getTrainerScheduleHandler.NewHandler(schedulesSvc, log)
	getMemberSchedule := getMemberScheduleHandler.NewHandler(schedulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (персонал зала, без аутентификации)
	// ============================================================

	// Свободные слоты тренеров на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Групповые занятия ---
	api.HandleFunc("/classes", createClass.Handle).Methods(http.MethodPost)
	// X-Member-ID опционален, поэтому Identify навешан на сам маршрут
	api.Handle("/classes", middleware.Identify(http.HandlerFunc(listClasses.Handle))).Methods(http.MethodGet)
	api.HandleFunc("/classes/{classId}", getClass.Handle).Methods(http.MethodGet)
	api.HandleFunc("/classes/{classId}", rescheduleClass.Handle).Methods(http.MethodPatch)

	// --- Доступность и расписание тренеров ---
	api.HandleFunc("/trainers/{trainerId}/availabilities", addAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/trainers/{trainerId}/availabilities", listAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trainers/{trainerId}/availabilities/{availabilityId}",
		deleteAvailability.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/trainers/{trainerId}/schedule", getTrainerSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// IDENTIFIED ROUTES (X-Member-ID опционален: член клуба или персонал)
	// ============================================================

	identified := api.PathPrefix("").Subrouter()
	identified.Use(middleware.Identify)

	identified.HandleFunc("/sessions/{sessionId}", rescheduleSession.Handle).Methods(http.MethodPatch)
	identified.HandleFunc("/sessions/{sessionId}", cancelSession.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Member-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Бронирование персональной тренировки
	protected.HandleFunc("/sessions", bookSession.Handle).Methods(http.MethodPost)

	// Запись на занятие и ее отмена
	protected.HandleFunc("/classes/{classId}/registrations", registerForClass.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/registrations/{registrationId}", cancelRegistration.Handle).Methods(http.MethodDelete)

	// Расписание члена клуба
	protected.HandleFunc("/members/{memberId}/schedule", getMemberSchedule.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
