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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_booking"
	createAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_availability"
	createBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking"
	createEventTypeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_event_type"
	deleteAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_availability"
	deleteEventTypeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_event_type"
	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	getAvailableDaysHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_booking"
	getEventTypesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_event_types"
	listBookingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_bookings"
	loginHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/login"
	registerHostHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/register_host"
	replaceAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/replace_availability"
	updateBookingStatusHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_booking_status"
	updateEventTypeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_event_type"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/auth"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/lock"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/queue"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/eventtype"
	hostRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/host"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/mailer"
	authService "github.com/m04kA/SMC-SchedulingService/internal/service/auth"
	availabilityService "github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	eventTypesService "github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	"github.com/m04kA/SMC-SchedulingService/internal/slotengine"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	getAvailableDaysUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	registerHostUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/register_host"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/schedule"
	"github.com/m04kA/SMC-SchedulingService/internal/worker"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

const rateLimiterCleanupInterval = time.Minute

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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var domainMetrics metrics.Recorder = metrics.Noop{}
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		domainMetrics = metricsCollector
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

	// С nil коллектором обёртка не пишет метрики
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopCh)
	txManager := txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxRetries(cfg.Database.TxMaxRetries))

	// Инициализируем репозитории
	hostRepository := hostRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	eventTypeRepository := eventTypeRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Движок слотов и планировщик в часовом поясе сервиса
	engine := slotengine.New(
		slotengine.WithStep(cfg.Scheduling.StepMinutes),
		slotengine.WithHorizon(cfg.Scheduling.HorizonDays),
	)
	planner := schedule.NewPlanner(engine, loc)

	// Redis: блокировка бронирований
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	var locker createBookingUC.Locker = lock.NoopLocker{}
	if cfg.Redis.LockEnabled {
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable (%s), booking lock will fail open: %v", cfg.Redis.Addr, err)
		}
		cancel()
		locker = lock.NewRedisLocker(redisClient, time.Duration(cfg.Redis.LockTTLSeconds)*time.Second)
		log.Info("Redis booking lock enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTLSeconds)
	}

	// Почта
	sender, err := mailer.NewSender(
		cfg.Mail.Provider,
		mailer.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			User:     cfg.Mail.SMTPUser,
			Password: cfg.Mail.SMTPPassword,
		},
		cfg.Mail.SendGridAPIKey,
		mailer.From{Email: cfg.Mail.FromEmail, Name: cfg.Mail.FromName},
	)
	if err != nil {
		log.Fatal("Failed to initialize mail sender: %v", err)
	}
	mail := mailer.New(sender, loc, cfg.Mail.PublicBaseURL, log)
	taskHandler := worker.NewTaskHandler(mail, log)
	log.Info("Mail provider initialized (%s)", cfg.Mail.Provider)

	// Уведомления: через очередь asynq или синхронно
	var (
		notifier    worker.Notifier
		asynqClient *asynq.Client
		asynqServer *asynq.Server
	)

	if cfg.Queue.Enabled {
		redisOpt := asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}

		asynqClient = asynq.NewClient(redisOpt)
		notifier = queue.NewPublisher(asynqClient, domainMetrics, cfg.Queue.Name, cfg.Queue.MaxRetry)

		asynqServer = asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
			Queues:      map[string]int{cfg.Queue.Name: 1},
		})
		if err := asynqServer.Start(taskHandler.Mux()); err != nil {
			log.Fatal("Failed to start queue worker: %v", err)
		}
		log.Info("Queue worker started (queue=%s, concurrency=%d)", cfg.Queue.Name, cfg.Queue.Concurrency)
	} else {
		notifier = worker.NewInlineNotifier(taskHandler)
		log.Info("Queue disabled, notifications are sent inline")
	}

	// Напоминания по cron
	var reminders *worker.ReminderScheduler
	if cfg.Reminders.Enabled {
		reminders = worker.NewReminderScheduler(
			bookingRepository,
			notifier,
			&worker.RealTimeProvider{},
			time.Duration(cfg.Reminders.LeadHours)*time.Hour,
			log,
		)
		if err := reminders.Start(cfg.Reminders.Schedule); err != nil {
			log.Fatal("Failed to start reminder scheduler: %v", err)
		}
	}

	// Аутентификация
	jwtManager := auth.NewJWTManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.Issuer,
	)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	// Инициализируем сервисы
	authSvc := authService.NewService(hostRepository, hasher, jwtManager, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, txManager, log)
	eventTypesSvc := eventTypesService.NewService(eventTypeRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		eventTypeRepository,
		notifier,
		domainMetrics,
		txManager,
		log,
	)

	// Инициализируем use cases
	registerHostUseCase := registerHostUC.NewUseCase(
		hostRepository,
		availabilityRepository,
		eventTypeRepository,
		hasher,
		txManager,
		log,
	)

	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		hostRepository,
		eventTypeRepository,
		availabilityRepository,
		planner,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		hostRepository,
		eventTypeRepository,
		availabilityRepository,
		bookingRepository,
		planner,
		domainMetrics,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		hostRepository,
		eventTypeRepository,
		availabilityRepository,
		bookingRepository,
		planner,
		locker,
		notifier,
		domainMetrics,
		txManager,
		log,
	)

	// Инициализируем handlers
	registerHost := registerHostHandler.NewHandler(registerHostUseCase, log)
	login := loginHandler.NewHandler(authSvc, log)

	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	replaceAvailability := replaceAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)

	getEventTypes := getEventTypesHandler.NewHandler(eventTypesSvc, log)
	createEventType := createEventTypeHandler.NewHandler(eventTypesSvc, log)
	updateEventType := updateEventTypeHandler.NewHandler(eventTypesSvc, log)
	deleteEventType := deleteEventTypeHandler.NewHandler(eventTypesSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// AUTH ROUTES
	// ============================================================

	api.HandleFunc("/auth/register", registerHost.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PUBLIC ROUTES (страница бронирования гостя)
	// ============================================================

	public := api.PathPrefix("/public").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		go limiter.RunCleanup(rateLimiterCleanupInterval, stopCh)
		public.Use(limiter.Middleware())
		log.Info("Rate limit enabled for public routes (rps=%.1f, burst=%d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Ссылки отмены регистрируем раньше, чтобы "bookings" не совпал с {username}
	public.HandleFunc("/bookings/{token}", getBooking.Handle).Methods(http.MethodGet)
	public.HandleFunc("/bookings/{token}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	public.HandleFunc("/{username}/{eventSlug}/days", getAvailableDays.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{username}/{eventSlug}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{username}/{eventSlug}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (кабинет хоста, Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(jwtManager, log))

	// --- Расписание ---
	protected.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability", createAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability", replaceAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/availability/{id:[0-9]+}", deleteAvailability.Handle).Methods(http.MethodDelete)

	// --- Типы событий ---
	protected.HandleFunc("/event-types", getEventTypes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/event-types", createEventType.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/event-types/{id:[0-9]+}", updateEventType.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/event-types/{id:[0-9]+}", deleteEventType.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся текущего запуска напоминаний
	if reminders != nil {
		select {
		case <-reminders.Stop().Done():
			log.Info("Reminder scheduler stopped")
		case <-shutdownCtx.Done():
			log.Warn("Reminder scheduler did not stop in time")
		}
	}

	if asynqServer != nil {
		asynqServer.Shutdown()
		log.Info("Queue worker stopped")
	}
	if asynqClient != nil {
		if err := asynqClient.Close(); err != nil {
			log.Error("Failed to close queue client: %v", err)
		}
	}

	// Останавливаем фоновые задачи (статистика пула, очистка лимитеров)
	close(stopCh)

	log.Info("Server stopped gracefully")
}
