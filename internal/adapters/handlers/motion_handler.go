package handlers

import (
	"net/http"

	"github.com/iwtcode/urAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// ExtractMotion извлекает целевые углы из текста сценария.
// @Summary Извлечь целевые углы
// @Description Ищет movej со списком углов, затем pose_trans с позой (эвристическое преобразование).
// @Tags Motion
// @Accept json
// @Produce json
// @Param input body models.MotionRequest true "Текст сценария"
// @Success 200 {object} models.MotionResponse "Углы суставов в радианах"
// @Failure 422 {object} models.ErrorResponse "Команда движения не найдена"
// @Router /motion/extract [post]
func (h *Handler) ExtractMotion(c *gin.Context) {
	var req models.MotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	target, err := h.usecase.ExtractMotion(req)
	if err != nil {
		h.AppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "target": target})
}

// SimulateMotion извлекает углы и передает их в симулятор.
// @Summary Передать движение в симулятор
// @Description Записывает углы в файл команд симулятора и запускает симулятор, если он не запущен.
// @Tags Motion
// @Accept json
// @Produce json
// @Param input body models.MotionRequest true "Текст сценария"
// @Success 200 {object} models.MotionResponse "Углы переданы"
// @Failure 422 {object} models.ErrorResponse "Команда движения не найдена"
// @Failure 503 {object} models.ErrorResponse "Симулятор недоступен"
// @Router /motion/simulate [post]
func (h *Handler) SimulateMotion(c *gin.Context) {
	var req models.MotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	target, err := h.usecase.SimulateMotion(c.Request.Context(), req)
	if err != nil {
		h.AppError(c, err)
		return
	}

	h.logger.Info("Motion passed to simulator", "joints", target.Joints)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "target": target})
}
