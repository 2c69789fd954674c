package handlers

import (
	"net/http"

	"github.com/iwtcode/urAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// CreateConnection создает новую сессию робота.
// @Summary Создать подключение
// @Description Проверяет dashboard-порт, подключается к основному (или резервному) порту управления и отправляет тестовую программу.
// @Tags Connection
// @Accept json
// @Produce json
// @Param input body models.ConnectionRequest true "Адрес робота и необязательный резервный порт"
// @Success 200 {object} models.CreateConnectionResponse "Успешное создание подключения"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} models.ErrorResponse "Сессия для хоста уже существует"
// @Failure 503 {object} models.ErrorResponse "Робот недоступен"
// @Router /connect [post]
func (h *Handler) CreateConnection(c *gin.Context) {
	var req models.ConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	h.logger.Info("Attempting to create a new connection", "host", req.Host, "fallback_port", req.FallbackPort)

	connInfo, err := h.usecase.CreateConnection(c.Request.Context(), req)
	if err != nil {
		h.AppError(c, err)
		return
	}

	h.logger.Info("Successfully created connection", "sessionID", connInfo.SessionID)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "connection_info": connInfo})
}

// GetConnections возвращает список всех сессий.
// @Summary Получить список подключений
// @Description Возвращает текущий пул сессий роботов.
// @Tags Connection
// @Produce json
// @Success 200 {object} models.GetConnectionsResponse "Список сессий"
// @Router /connect [get]
func (h *Handler) GetConnections(c *gin.Context) {
	connections := h.usecase.GetAllConnections()
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"pool_size":   len(connections),
		"connections": connections,
	})
}

// DeleteConnection отключает робота и удаляет сессию.
// @Summary Удалить подключение
// @Description Отправляет stopj, закрывает канал, удаляет сессию из пула и БД.
// @Tags Connection
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии для удаления"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном удалении"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Router /connect [delete]
func (h *Handler) DeleteConnection(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	h.logger.Info("Attempting to delete connection", "sessionID", req.SessionID)

	if err := h.usecase.DeleteConnection(c.Request.Context(), req.SessionID); err != nil {
		h.AppError(c, err)
		return
	}

	h.logger.Info("Successfully deleted connection", "sessionID", req.SessionID)
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Session " + req.SessionID + " disconnected successfully",
	})
}

// CheckConnection проверяет состояние канала по SessionID.
// @Summary Проверить состояние подключения
// @Description Возвращает состояние канала; если канал закрыт, выполняет одну попытку подключения.
// @Tags Connection
// @Accept json
// @Produce json
// @Param input body models.SessionRequest true "ID сессии для проверки"
// @Success 200 {object} models.CheckConnectionResponse "Статус 'healthy' или 'unhealthy'"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Router /connect/check [post]
func (h *Handler) CheckConnection(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Missing or invalid SessionID")
		return
	}

	connInfo, err := h.usecase.CheckConnection(c.Request.Context(), req.SessionID)

	if connInfo == nil {
		h.AppError(c, err)
		return
	}

	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "unhealthy", "error": err.Error(), "connection_info": connInfo})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy", "connection_info": connInfo})
}
