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

	cancelRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_rental"
	cancelReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_reservation"
	createRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_rental"
	createReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_reservation"
	deleteRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_rental"
	depositFundsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/deposit_funds"
	getRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_rental"
	getReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_reservation"
	getUserPaymentsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_payments"
	getUserRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_rentals"
	getUserReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_reservations"
	returnCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/return_car"
	setRentalStatusHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/set_rental_status"
	setReservationStatusHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/set_reservation_status"
	updateRentalDatesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_rental_dates"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	paymentRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/payment"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	stationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/station"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/integrations/notifier"
	"github.com/m04kA/SMC-RentalService/internal/jobs"
	"github.com/m04kA/SMC-RentalService/internal/scheduler"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	reservationsService "github.com/m04kA/SMC-RentalService/internal/service/reservations"
	cancelRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_rental"
	cancelReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_reservation"
	createRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
	createReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
	deleteRentalUC "github.com/m04kA/SMC-RentalService/internal/usecase/delete_rental"
	depositFundsUC "github.com/m04kA/SMC-RentalService/internal/usecase/deposit_funds"
	returnCarUC "github.com/m04kA/SMC-RentalService/internal/usecase/return_car"
	setRentalStatusUC "github.com/m04kA/SMC-RentalService/internal/usecase/set_rental_status"
	setReservationStatusUC "github.com/m04kA/SMC-RentalService/internal/usecase/set_reservation_status"
	updateRentalDatesUC "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental_dates"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Инициализируем email-уведомления
	notifierClient := notifier.NewClient(
		cfg.Notifier.APIKey,
		cfg.Notifier.FromEmail,
		cfg.Notifier.FromName,
		cfg.Notifier.Enabled,
		log,
	)
	if cfg.Notifier.Enabled {
		log.Info("Email notifications enabled (from=%s)", cfg.Notifier.FromEmail)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		clientRepository      *clientRepo.Repository
		vehicleRepository     *vehicleRepo.Repository
		stationRepository     *stationRepo.Repository
		rentalRepository      *rentalRepo.Repository
		reservationRepository *reservationRepo.Repository
		paymentRepository     *paymentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		clientRepository = clientRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		stationRepository = stationRepo.NewRepository(wrappedDB)
		rentalRepository = rentalRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		clientRepository = clientRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		stationRepository = stationRepo.NewRepository(db)
		rentalRepository = rentalRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы чтения
	rentalsSvc := rentalsService.NewService(rentalRepository, paymentRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createRentalUseCase := createRentalUC.NewUseCase(
		clientRepository,
		vehicleRepository,
		stationRepository,
		rentalRepository,
		reservationRepository,
		paymentRepository,
		txMgr,
		notifierClient,
		log,
	)
	updateRentalDatesUseCase := updateRentalDatesUC.NewUseCase(
		clientRepository,
		vehicleRepository,
		rentalRepository,
		reservationRepository,
		paymentRepository,
		txMgr,
		log,
	)
	cancelRentalUseCase := cancelRentalUC.NewUseCase(
		clientRepository,
		rentalRepository,
		paymentRepository,
		txMgr,
		notifierClient,
		log,
	)
	setRentalStatusUseCase := setRentalStatusUC.NewUseCase(
		clientRepository,
		vehicleRepository,
		rentalRepository,
		reservationRepository,
		paymentRepository,
		txMgr,
		notifierClient,
		log,
	)
	returnCarUseCase := returnCarUC.NewUseCase(
		clientRepository,
		vehicleRepository,
		rentalRepository,
		stationRepository,
		txMgr,
		notifierClient,
		log,
		cfg.Booking.MaxReturnDistanceKm,
	)
	deleteRentalUseCase := deleteRentalUC.NewUseCase(
		clientRepository,
		rentalRepository,
		paymentRepository,
		txMgr,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		clientRepository,
		vehicleRepository,
		rentalRepository,
		reservationRepository,
		txMgr,
		&createReservationUC.RealTimeProvider{},
		log,
	)
	setReservationStatusUseCase := setReservationStatusUC.NewUseCase(
		rentalRepository,
		reservationRepository,
		txMgr,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		log,
	)
	depositFundsUseCase := depositFundsUC.NewUseCase(
		clientRepository,
		paymentRepository,
		txMgr,
		notifierClient,
		log,
	)

	// Инициализируем handlers
	createRental := createRentalHandler.NewHandler(createRentalUseCase, log)
	updateRentalDates := updateRentalDatesHandler.NewHandler(updateRentalDatesUseCase, log)
	cancelRental := cancelRentalHandler.NewHandler(cancelRentalUseCase, log)
	setRentalStatus := setRentalStatusHandler.NewHandler(setRentalStatusUseCase, log)
	returnCar := returnCarHandler.NewHandler(returnCarUseCase, log)
	deleteRental := deleteRentalHandler.NewHandler(deleteRentalUseCase, log)
	getRental := getRentalHandler.NewHandler(rentalsSvc, log)
	getUserRentals := getUserRentalsHandler.NewHandler(rentalsSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	setReservationStatus := setReservationStatusHandler.NewHandler(setReservationStatusUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getUserPayments := getUserPaymentsHandler.NewHandler(rentalsSvc, log)
	depositFunds := depositFundsHandler.NewHandler(depositFundsUseCase, log)

	// Запускаем фоновые задачи
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		runner := jobs.NewRunner(reservationRepository, log)
		sched = scheduler.New(cfg.Scheduler, runner, log)
		sched.Start()
		log.Info("Scheduler started (stale reservation sweep: %s)", cfg.Scheduler.StaleReservationSweep)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все ручки требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Аренды ---
	api.HandleFunc("/rentals", createRental.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rentals/return", returnCar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{rentalId}", getRental.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{rentalId}", deleteRental.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/rentals/{rentalId}/dates", updateRentalDates.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rentals/{rentalId}/cancel", cancelRental.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/rentals/{rentalId}/status", setRentalStatus.Handle).Methods(http.MethodPatch)

	// --- Брони ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}/status", setReservationStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// --- История пользователя ---
	api.HandleFunc("/users/{userId}/rentals", getUserRentals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/payments", getUserPayments.Handle).Methods(http.MethodGet)

	// --- Баланс ---
	api.HandleFunc("/balance/deposit", depositFunds.Handle).Methods(http.MethodPost)

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

	// Останавливаем фоновые задачи
	if sched != nil {
		sched.Stop()
		log.Info("Scheduler stopped")
	}

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
