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

	createDiningReservationHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/create_dining_reservation"
	createRoomReservationHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/create_room_reservation"
	deleteDiningReservationHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/delete_dining_reservation"
	deleteRoomReservationHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/delete_room_reservation"
	diningSelectionHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/dining_selection"
	getCategoriesHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/get_categories"
	getDiningCalendarHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/get_dining_calendar"
	getDiningReservationsHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/get_dining_reservations"
	getRoomAvailabilityHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/get_room_availability"
	getRoomCalendarHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/get_room_calendar"
	getRoomReservationsHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/get_room_reservations"
	staySelectionHandler "github.com/castelmar/CH-BookingService/internal/api/handlers/stay_selection"
	"github.com/castelmar/CH-BookingService/internal/api/middleware"
	"github.com/castelmar/CH-BookingService/internal/config"
	categoryRepo "github.com/castelmar/CH-BookingService/internal/infra/storage/category"
	diningRepo "github.com/castelmar/CH-BookingService/internal/infra/storage/diningreservation"
	roomRepo "github.com/castelmar/CH-BookingService/internal/infra/storage/roomreservation"
	categoriesService "github.com/castelmar/CH-BookingService/internal/service/categories"
	reservationsService "github.com/castelmar/CH-BookingService/internal/service/reservations"
	selectionsService "github.com/castelmar/CH-BookingService/internal/service/selections"
	createDiningReservationUC "github.com/castelmar/CH-BookingService/internal/usecase/create_dining_reservation"
	createRoomReservationUC "github.com/castelmar/CH-BookingService/internal/usecase/create_room_reservation"
	getDiningCalendarUC "github.com/castelmar/CH-BookingService/internal/usecase/get_dining_calendar"
	getRoomAvailabilityUC "github.com/castelmar/CH-BookingService/internal/usecase/get_room_availability"
	getRoomCalendarUC "github.com/castelmar/CH-BookingService/internal/usecase/get_room_calendar"
	"github.com/castelmar/CH-BookingService/pkg/dbmetrics"
	"github.com/castelmar/CH-BookingService/pkg/logger"
	"github.com/castelmar/CH-BookingService/pkg/metrics"
)

// selectionPurgeInterval период очистки простаивающих сессий выбора дат
const selectionPurgeInterval = 10 * time.Minute

// selectionMaxIdle максимальный простой сессии выбора дат
const selectionMaxIdle = 30 * time.Minute

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

	log.Info("Starting CH-BookingService...")
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
		roomRepository     *roomRepo.Repository
		diningRepository   *diningRepo.Repository
		categoryRepository *categoryRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomRepo.NewRepository(wrappedDB)
		diningRepository = diningRepo.NewRepository(wrappedDB)
		categoryRepository = categoryRepo.NewRepository(wrappedDB)
	} else {
		roomRepository = roomRepo.NewRepository(db)
		diningRepository = diningRepo.NewRepository(db)
		categoryRepository = categoryRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	categorySvc := categoriesService.NewService(categoryRepository, log)
	reservationSvc := reservationsService.NewService(roomRepository, diningRepository, log)
	selectionSvc := selectionsService.NewService(log)

	// Инициализируем use cases
	getRoomCalendarUseCase := getRoomCalendarUC.NewUseCase(roomRepository, categorySvc, log)
	getDiningCalendarUseCase := getDiningCalendarUC.NewUseCase(diningRepository, categorySvc, log)
	getRoomAvailabilityUseCase := getRoomAvailabilityUC.NewUseCase(roomRepository, categorySvc, log)
	createRoomReservationUseCase := createRoomReservationUC.NewUseCase(roomRepository, categorySvc, log)
	createDiningReservationUseCase := createDiningReservationUC.NewUseCase(diningRepository, categorySvc, log)

	// Инициализируем handlers
	getRoomCalendar := getRoomCalendarHandler.NewHandler(getRoomCalendarUseCase, log)
	getDiningCalendar := getDiningCalendarHandler.NewHandler(getDiningCalendarUseCase, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(getRoomAvailabilityUseCase, log)
	createRoomReservation := createRoomReservationHandler.NewHandler(createRoomReservationUseCase, log)
	createDiningReservation := createDiningReservationHandler.NewHandler(createDiningReservationUseCase, log)
	getCategories := getCategoriesHandler.NewHandler(categorySvc, log)
	staySelection := staySelectionHandler.NewHandler(selectionSvc, log)
	diningSelection := diningSelectionHandler.NewHandler(selectionSvc, log)
	getRoomReservations := getRoomReservationsHandler.NewHandler(reservationSvc, log)
	deleteRoomReservation := deleteRoomReservationHandler.NewHandler(reservationSvc, log)
	getDiningReservations := getDiningReservationsHandler.NewHandler(reservationSvc, log)
	deleteDiningReservation := deleteDiningReservationHandler.NewHandler(reservationSvc, log)

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

	// Календарь номеров на месяц
	api.HandleFunc("/calendar/rooms", getRoomCalendar.Handle).Methods(http.MethodGet)

	// Календарь ресторанов на месяц
	api.HandleFunc("/calendar/dining", getDiningCalendar.Handle).Methods(http.MethodGet)

	// Доступность номеров на дату
	api.HandleFunc("/availability/rooms", getRoomAvailability.Handle).Methods(http.MethodGet)

	// Справочник категорий номеров и ресторанов
	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)

	// Создание бронирований
	api.HandleFunc("/reservations/rooms", createRoomReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/dining", createDiningReservation.Handle).Methods(http.MethodPost)

	// Сессии выбора дат в модалках бронирования
	api.HandleFunc("/stay-selection/{sessionId}", staySelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/dining-selection/{sessionId}", diningSelection.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// Список и удаление бронирований номеров
	protected.HandleFunc("/reservations/rooms", getRoomReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/rooms/{reservationId}", deleteRoomReservation.Handle).Methods(http.MethodDelete)

	// Список и удаление бронирований столиков
	protected.HandleFunc("/reservations/dining", getDiningReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/dining/{reservationId}", deleteDiningReservation.Handle).Methods(http.MethodDelete)

	// Фоновая очистка простаивающих сессий выбора дат
	stopPurgeCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(selectionPurgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stopPurgeCh:
				return
			case <-ticker.C:
				selectionSvc.PurgeIdle(selectionMaxIdle)
			}
		}
	}()

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
	close(stopPurgeCh)
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
