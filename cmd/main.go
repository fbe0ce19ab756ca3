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

	cancelBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/confirm_booking"
	confirmPaymentHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/confirm_payment"
	createBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_booking"
	createPaymentIntentHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/create_payment_intent"
	getAllBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_all_bookings"
	getAllPaymentsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_all_payments"
	getAvailableRoomsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking"
	getBookingPaymentHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_booking_payment"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_bookings"
	getUserNotificationsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_notifications"
	getUserPaymentsHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/get_user_payments"
	markAllNotificationsReadHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/m04kA/SMC-HotelBookingService/internal/api/handlers/mark_notification_read"
	"github.com/m04kA/SMC-HotelBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/notification"
	paymentRepo "github.com/m04kA/SMC-HotelBookingService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-HotelBookingService/internal/integrations/mailer"
	paymentGatewayClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/paymentgateway"
	roomServiceClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/roomservice"
	userServiceClient "github.com/m04kA/SMC-HotelBookingService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-HotelBookingService/internal/service/bookings"
	notificationsService "github.com/m04kA/SMC-HotelBookingService/internal/service/notifications"
	paymentsService "github.com/m04kA/SMC-HotelBookingService/internal/service/payments"
	confirmPaymentUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_booking"
	createPaymentIntentUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/create_payment_intent"
	getAvailableRoomsUC "github.com/m04kA/SMC-HotelBookingService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/logger"
	"github.com/m04kA/SMC-HotelBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelBookingService...")
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

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	roomClient := roomServiceClient.NewClient(
		cfg.RoomService.URL,
		time.Duration(cfg.RoomService.Timeout)*time.Second,
		log,
	)
	gatewayClient := paymentGatewayClient.NewClient(
		cfg.PaymentGateway.URL,
		cfg.PaymentGateway.SecretKey,
		cfg.PaymentGateway.Currency,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s, RoomService=%s, PaymentGateway=%s)",
		cfg.UserService.URL, cfg.RoomService.URL, cfg.PaymentGateway.URL)

	mailSender := mailer.New(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.AdminEmail,
		log,
	)
	log.Info("Mailer initialized (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.From)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		paymentRepository      *paymentRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		paymentRepository,
		notificationSvc,
		userClient,
		mailSender,
		log,
	)
	paymentSvc := paymentsService.NewService(paymentRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomClient,
		userClient,
		notificationSvc,
		mailSender,
		txMgr,
		log,
	)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(
		bookingRepository,
		roomClient,
		log,
	)
	createPaymentIntentUseCase := createPaymentIntentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		gatewayClient,
		notificationSvc,
		cfg.PaymentGateway.Currency,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		userClient,
		notificationSvc,
		mailSender,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getBookingPayment := getBookingPaymentHandler.NewHandler(paymentSvc, log)
	getUserPayments := getUserPaymentsHandler.NewHandler(paymentSvc, log)
	getAllPayments := getAllPaymentsHandler.NewHandler(paymentSvc, log)
	getUserNotifications := getUserNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск свободных номеров на диапазон дат
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	protected.HandleFunc("/payments/intent", createPaymentIntent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/confirm", confirmPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/payment", getBookingPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/payments", getUserPayments.Handle).Methods(http.MethodGet)

	// --- Уведомления ---
	protected.HandleFunc("/users/{userId}/notifications", getUserNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly)

	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/payments", getAllPayments.Handle).Methods(http.MethodGet)

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
