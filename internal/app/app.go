package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/urAdapter/internal/adapters/handlers"
	"github.com/iwtcode/urAdapter/internal/adapters/repositories/postgres"
	"github.com/iwtcode/urAdapter/internal/config"
	"github.com/iwtcode/urAdapter/internal/interfaces"
	"github.com/iwtcode/urAdapter/internal/middleware/logging"
	"github.com/iwtcode/urAdapter/internal/middleware/swagger"
	"github.com/iwtcode/urAdapter/internal/services/kafka"
	"github.com/iwtcode/urAdapter/internal/services/robot_service"
	"github.com/iwtcode/urAdapter/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		RepositoryModule,
		ProducerModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для хуков жизненного цикла
		fx.Invoke(InvokeRestoreConnections),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(lc fx.Lifecycle, cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	logger := logging.NewLogger(loggerCfg, "URAdapterApp")
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Close()
		},
	})
	return logger
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

var RepositoryModule = fx.Module("repository_module",
	fx.Provide(postgres.NewRepository),
)

func ProvideProducer(lc fx.Lifecycle, cfg *config.AppConfig, logger *logging.Logger) (interfaces.KafkaService, error) {
	producer, err := kafka.NewKafkaProducer(cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Kafka producer...")
			return producer.Close()
		},
	})
	return producer, nil
}

var ProducerModule = fx.Module("producer_module",
	fx.Provide(ProvideProducer),
)

// ProvideRobotService регистрирует закрытие всех сессий при остановке.
// Хук добавляется после хука продюсера, поэтому выполняется раньше него.
func ProvideRobotService(lc fx.Lifecycle, cfg *config.AppConfig, repo interfaces.RobotSessionRepository, producer interfaces.KafkaService, logger *logging.Logger) interfaces.RobotService {
	svc := robot_service.NewRobotService(cfg, repo, producer, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing robot sessions...")
			svc.Close()
			return nil
		},
	})
	return svc
}

var ServiceModule = fx.Module("service_module",
	fx.Provide(ProvideRobotService),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

func NewSwaggerConfig() *swagger.Config {
	return &swagger.Config{
		Enabled: true,
		Path:    "/swagger",
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeRestoreConnections восстанавливает сессии роботов при старте.
// Подключение выполняется в фоне, чтобы недоступные роботы не задерживали запуск.
func InvokeRestoreConnections(lc fx.Lifecycle, uc interfaces.Usecases, dbRepo interfaces.RobotSessionRepository, logger *logging.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("Restoring sessions from the database...")
			sessions, err := dbRepo.GetAll()
			if err != nil {
				logger.Error("Failed to get session list from DB", "error", err)
				close(done)
				return nil // Не фатально, просто продолжаем
			}

			if len(sessions) == 0 {
				logger.Info("No saved sessions found to restore.")
				close(done)
				return nil
			}

			go func() {
				defer close(done)
				for _, session := range sessions {
					if ctx.Err() != nil {
						return
					}
					logger.Info("Attempting to restore session", "sessionID", session.SessionID, "host", session.Host)

					connInfo, _ := uc.RestoreConnection(ctx, session)
					if connInfo != nil && connInfo.IsHealthy {
						logger.Info("Session restored successfully in pool", "sessionID", session.SessionID)
					} else {
						logger.Warn("Session restored in pool but is unhealthy.", "sessionID", session.SessionID)
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // Connect может занять до трех таймаутов проверки
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
