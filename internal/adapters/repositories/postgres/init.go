package postgres

import (
	"fmt"
	"time"

	"github.com/iwtcode/urAdapter/internal/adapters/repositories/postgres/robot_session"
	"github.com/iwtcode/urAdapter/internal/config"
	"github.com/iwtcode/urAdapter/internal/domain/entities"
	"github.com/iwtcode/urAdapter/internal/interfaces"
	"github.com/iwtcode/urAdapter/internal/middleware/logging"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	interfaces.RobotSessionRepository
}

func dsn(db config.DatabaseConfig, name string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		db.Host,
		db.Username,
		db.Password,
		name,
		db.Port,
	)
}

func NewRepository(cfg *config.AppConfig, appLogger *logging.Logger) (interfaces.RobotSessionRepository, error) {
	// Шаг 1: Подключение к служебной БД 'postgres' для проверки и создания целевой БД
	db, err := gorm.Open(postgres.Open(dsn(cfg.Database, "postgres")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к служебной БД 'postgres': %w", err)
	}

	// Шаг 2: Проверка существования нужной БД
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)"
	if err := db.Raw(query, cfg.Database.DBName).Scan(&exists).Error; err != nil {
		return nil, fmt.Errorf("не удалось проверить существование БД '%s': %w", cfg.Database.DBName, err)
	}

	// Шаг 3: Если БД не существует, создаем ее
	if !exists {
		appLogger.Info("Database not found. Creating...", "db_name", cfg.Database.DBName)
		createDbQuery := fmt.Sprintf("CREATE DATABASE %s", cfg.Database.DBName)
		if err := db.Exec(createDbQuery).Error; err != nil {
			return nil, fmt.Errorf("не удалось создать БД '%s': %w", cfg.Database.DBName, err)
		}
		appLogger.Info("Database created successfully.", "db_name", cfg.Database.DBName)
	}

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()

	// Шаг 4: Основное подключение к целевой базе данных, SQL-логи идут через logrus
	gormLogger := logger.New(
		appLogger.WithPrefix("GORM").Entry(),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	appDb, err := gorm.Open(postgres.Open(dsn(cfg.Database, cfg.Database.DBName)), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных '%s': %w", cfg.Database.DBName, err)
	}

	if err := appDb.AutoMigrate(&entities.RobotSession{}); err != nil {
		return nil, fmt.Errorf("ошибка выполнения автомиграций: %w", err)
	}

	return &Repository{
		RobotSessionRepository: robot_session.NewRobotSessionRepository(appDb),
	}, nil
}
