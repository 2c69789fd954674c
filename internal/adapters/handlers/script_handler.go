package handlers

import (
	"net/http"

	"github.com/iwtcode/urAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// SendScript отправляет сценарий из файла на контроллер.
// @Summary Отправить сценарий
// @Description Читает файл сценария (по умолчанию GeneratedURScript.urscript) и передает его в канал управления. Подключается при необходимости.
// @Tags Script
// @Accept json
// @Produce json
// @Param input body models.ScriptRequest true "ID сессии и необязательный путь к файлу"
// @Success 200 {object} models.DispatchResponse "Сценарий передан"
// @Failure 400 {object} models.ErrorResponse "Путь сценария вне каталога сценариев"
// @Failure 404 {object} models.ErrorResponse "Сессия или файл не найдены"
// @Failure 502 {object} models.ErrorResponse "Ошибка передачи, канал закрыт"
// @Failure 503 {object} models.ErrorResponse "Робот недоступен"
// @Router /script/send [post]
func (h *Handler) SendScript(c *gin.Context) {
	var req models.ScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	result, err := h.usecase.SendScript(c.Request.Context(), req)
	if err != nil {
		h.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "result": result})
}

// ExecuteCommand отправляет одну команду URScript.
// @Summary Выполнить команду
// @Description Передает одну строку URScript в канал управления. Успех означает только, что байты записаны.
// @Tags Script
// @Accept json
// @Produce json
// @Param input body models.CommandRequest true "ID сессии и команда"
// @Success 200 {object} models.DispatchResponse "Команда передана"
// @Failure 404 {object} models.ErrorResponse "Сессия не найдена"
// @Failure 502 {object} models.ErrorResponse "Ошибка передачи, канал закрыт"
// @Failure 503 {object} models.ErrorResponse "Робот недоступен"
// @Router /script/execute [post]
func (h *Handler) ExecuteCommand(c *gin.Context) {
	var req models.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	result, err := h.usecase.SendImmediate(c.Request.Context(), req)
	if err != nil {
		h.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "result": result})
}
