package handlers

import (
	"net/http"

	"github.com/iwtcode/urAdapter/internal/config"
	"github.com/iwtcode/urAdapter/internal/interfaces"
	"github.com/iwtcode/urAdapter/internal/middleware/logging"
	"github.com/iwtcode/urAdapter/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		connections := v1.Group("/connect")
		{
			connections.POST("", h.CreateConnection)
			connections.GET("", h.GetConnections)
			connections.DELETE("", h.DeleteConnection)
			connections.POST("/check", h.CheckConnection)
		}

		script := v1.Group("/script")
		{
			script.POST("/send", h.SendScript)
			script.POST("/execute", h.ExecuteCommand)
		}

		motion := v1.Group("/motion")
		{
			motion.POST("/extract", h.ExtractMotion)
			motion.POST("/simulate", h.SimulateMotion)
		}
	}

	return router
}
