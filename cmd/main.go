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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	checkAvailabilityHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/delete_booking"
	exportCalendarHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/export_calendar"
	leavesHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/leaves"
	listBookingsHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/list_bookings"
	roomsHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/rooms"
	selectionHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/selection"
	trainingTypesHandler "github.com/m04kA/SMC-PlanningService/internal/api/handlers/training_types"
	"github.com/m04kA/SMC-PlanningService/internal/api/middleware"
	"github.com/m04kA/SMC-PlanningService/internal/config"
	"github.com/m04kA/SMC-PlanningService/internal/domain"
	stateRepo "github.com/m04kA/SMC-PlanningService/internal/infra/storage/state"
	leavesService "github.com/m04kA/SMC-PlanningService/internal/service/leaves"
	roomsService "github.com/m04kA/SMC-PlanningService/internal/service/rooms"
	trainingTypesService "github.com/m04kA/SMC-PlanningService/internal/service/trainingtypes"
	"github.com/m04kA/SMC-PlanningService/internal/store"
	createBookingUC "github.com/m04kA/SMC-PlanningService/internal/usecase/create_booking"
	exportCalendarUC "github.com/m04kA/SMC-PlanningService/internal/usecase/export_calendar"
	"github.com/m04kA/SMC-PlanningService/pkg/logger"
	"github.com/m04kA/SMC-PlanningService/pkg/metrics"
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

	log.Info("Starting SMC-PlanningService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var recorder store.Recorder
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		recorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем файл состояния
	db, err := sql.Open("sqlite", cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer db.Close()

	// Снапшоты пишутся последовательно, пул соединений не нужен
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping storage: %v", err)
	}

	// Инициализируем репозиторий состояния
	stateRepository := stateRepo.NewRepository(db, domain.StorageSlot)
	if err := stateRepository.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare storage schema: %v", err)
	}
	log.Info("Storage ready at %s (slot=%s)", cfg.Storage.Path, domain.StorageSlot)

	// Инициализируем стор и загружаем состояние
	planningStore := store.New(stateRepository, log, recorder, store.Options{
		CascadeOnRoomDelete: cfg.Planning.CascadeOnRoomDelete,
	})
	if err := planningStore.Load(context.Background()); err != nil {
		log.Fatal("Failed to load planning state: %v", err)
	}

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(planningStore, log)
	leavesSvc := leavesService.NewService(planningStore, log)
	trainingTypesSvc := trainingTypesService.NewService(planningStore, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(planningStore, log)
	exportCalendarUseCase := exportCalendarUC.NewUseCase(planningStore, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(planningStore, log)
	listBookings := listBookingsHandler.NewHandler(planningStore, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(planningStore, log)
	exportCalendar := exportCalendarHandler.NewHandler(exportCalendarUseCase, log)
	rooms := roomsHandler.NewHandler(roomsSvc, log)
	leaves := leavesHandler.NewHandler(leavesSvc, log)
	trainingTypes := trainingTypesHandler.NewHandler(trainingTypesSvc, log)
	selection := selectionHandler.NewHandler(planningStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Доступность ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Залы ---
	api.HandleFunc("/rooms", rooms.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/rooms", rooms.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", rooms.HandleUpdate).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{roomId}", rooms.HandleDelete).Methods(http.MethodDelete)

	// --- Отпуска референтов ---
	api.HandleFunc("/leaves", leaves.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/leaves", leaves.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/leaves/{leaveId}", leaves.HandleUpdate).Methods(http.MethodPatch)
	api.HandleFunc("/leaves/{leaveId}", leaves.HandleDelete).Methods(http.MethodDelete)

	// --- Типы формаций ---
	api.HandleFunc("/training-types", trainingTypes.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/training-types", trainingTypes.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/training-types/{typeId}", trainingTypes.HandleDelete).Methods(http.MethodDelete)

	// --- Выбор залов ---
	api.HandleFunc("/selection", selection.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/selection/room", selection.HandleSetRoom).Methods(http.MethodPut)
	api.HandleFunc("/selection/rooms", selection.HandleSetRooms).Methods(http.MethodPut)
	api.HandleFunc("/selection/rooms/{roomId}/toggle", selection.HandleToggleRoom).Methods(http.MethodPost)

	// --- Экспорт ---
	api.HandleFunc("/export/csv", exportCalendar.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
