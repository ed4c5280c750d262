package handler

import (
	"net/http"
	"strconv"

	"trainingcenter/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Обработчики справочников для каскадных селектов формы

// GetTrainingTypes возвращает все виды обучения
// @Summary Список видов обучения
// @Tags Training
// @Produce json
// @Success 200 {object} dto.TrainingTypeListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/training-types [get]
func (h *Handler) GetTrainingTypes(c *gin.Context) {
	types, err := h.Repository.GetTrainingTypes()
	if err != nil {
		logrus.Error("Error getting training types: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения видов обучения")
		return
	}

	response := dto.TrainingTypeListResponse{
		Types: make([]dto.TrainingTypeResponse, len(types)),
	}
	for i, t := range types {
		response.Types[i] = dto.TrainingTypeResponse{ID: t.ID, Name: t.Name}
	}

	c.JSON(http.StatusOK, response)
}

// GetPrograms возвращает программы выбранного вида обучения
// @Summary Список программ обучения
// @Tags Training
// @Produce json
// @Param type_id query int true "ID вида обучения"
// @Success 200 {object} dto.TrainingProgramListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/programs [get]
func (h *Handler) GetPrograms(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Query("type_id"), 10, 32)
	if err != nil || typeID == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID вида обучения")
		return
	}

	programs, err := h.Repository.GetProgramsByType(uint(typeID))
	if err != nil {
		logrus.Error("Error getting training programs: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения программ обучения")
		return
	}

	response := dto.TrainingProgramListResponse{
		Programs: make([]dto.TrainingProgramResponse, len(programs)),
	}
	for i, p := range programs {
		response.Programs[i] = dto.TrainingProgramResponse{ID: p.ID, Name: p.Name}
	}

	c.JSON(http.StatusOK, response)
}
