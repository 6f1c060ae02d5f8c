package main

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/farm-management-api/internal/config"
	"github.com/farm-management-api/internal/domain"
	"github.com/farm-management-api/internal/handler"
	"github.com/farm-management-api/internal/repository"
	"github.com/farm-management-api/internal/service"
)

//go:embed migrations
var embedMigrations embed.FS

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации (.env, если есть, затем переменные окружения)
	_ = godotenv.Load()
	cfg := config.Load()

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := runMigrations(sqlDB, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	fieldRepo := repository.NewCRUD[domain.Field](db, domain.ErrFieldNotFound)
	cultureRepo := repository.NewCRUD[domain.Culture](db, domain.ErrCultureNotFound)
	employeeRepo := repository.NewCRUD[domain.Employee](db, domain.ErrEmployeeNotFound)
	techniqueRepo := repository.NewCRUD[domain.Technique](db, domain.ErrTechniqueNotFound)
	materialTypeRepo := repository.NewCRUD[domain.MaterialType](db, domain.ErrMaterialTypeNotFound)
	supplierRepo := repository.NewCRUD[domain.Supplier](db, domain.ErrSupplierNotFound)
	workTypeRepo := repository.NewCRUD[domain.WorkType](db, domain.ErrWorkTypeNotFound)
	plantingRepo := repository.NewCRUD[domain.Planting](db, domain.ErrPlantingNotFound, "Field", "Culture")
	purchaseRepo := repository.NewCRUD[domain.Purchase](db, domain.ErrPurchaseNotFound, "Material", "Supplier")
	workRepo := repository.NewCRUD[domain.Work](db, domain.ErrWorkNotFound, "WorkType", "Field", "Technique", "Employee")
	expenseRepo := repository.NewCRUD[domain.Expense](db, domain.ErrExpenseNotFound, "Work")
	usageRepo := repository.NewMaterialUsageRepository(db)
	harvestRepo := repository.NewHarvestRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	clientRepo := repository.NewClientRepository(db)

	// Инициализация сервисов
	fieldService := service.NewCatalog(fieldRepo)
	cultureService := service.NewCatalog(cultureRepo)
	employeeService := service.NewCatalog(employeeRepo)
	techniqueService := service.NewCatalog(techniqueRepo)
	materialTypeService := service.NewCatalog(materialTypeRepo)
	supplierService := service.NewCatalog(supplierRepo)
	workTypeService := service.NewCatalog(workTypeRepo)
	plantingService := service.NewPlantingService(plantingRepo, fieldRepo, cultureRepo)
	harvestService := service.NewHarvestService(harvestRepo, fieldRepo, cultureRepo)
	clientService := service.NewClientService(clientRepo)
	saleService := service.NewSaleService(saleRepo, clientRepo, harvestRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo, materialTypeRepo, supplierRepo)
	workService := service.NewWorkService(workRepo, workTypeRepo, fieldRepo, techniqueRepo, employeeRepo)
	usageService := service.NewMaterialUsageService(usageRepo, materialTypeRepo, workRepo)
	expenseService := service.NewExpenseService(expenseRepo, workRepo)

	// Инициализация хендлеров
	handlers := handler.NewHandlers(
		handler.NewFieldHandler(fieldService, logger),
		handler.NewCultureHandler(cultureService, logger),
		handler.NewEmployeeHandler(employeeService, logger),
		handler.NewTechniqueHandler(techniqueService, logger),
		handler.NewMaterialTypeHandler(materialTypeService, logger),
		handler.NewSupplierHandler(supplierService, logger),
		handler.NewWorkTypeHandler(workTypeService, logger),
		handler.NewPlantingHandler(plantingService, logger),
		handler.NewHarvestHandler(harvestService, saleService, logger),
		handler.NewClientHandler(clientService, saleService, logger),
		handler.NewSaleHandler(saleService, logger),
		handler.NewPurchaseHandler(purchaseService, logger),
		handler.NewWorkHandler(workService, usageService, logger),
		handler.NewMaterialUsageHandler(usageService, logger),
		handler.NewExpenseHandler(expenseService, logger),
	)

	// Настройка роутера
	router := handler.NewRouter(handlers, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		// Локальный файл, внешние ключи включаются на уровне соединения
		return gorm.Open(sqlite.Open(cfg.SQLitePath+"?_foreign_keys=on"), gormConfig)

	case config.DriverPostgres:
		var db *gorm.DB
		var err error

		for range 30 {
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
			if err == nil {
				var sqlDB *sql.DB
				if sqlDB, err = db.DB(); err == nil {
					if err = sqlDB.Ping(); err == nil {
						return db, nil
					}
				}
			}
			time.Sleep(time.Second)
		}

		return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)

	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func runMigrations(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect := driver
	if driver == config.DriverSQLite {
		dialect = "sqlite3"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations/"+driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
