package handler

import (
	"errors"
	"net/http"
	"strconv"

	"trainingcenter/internal/app/dto"
	"trainingcenter/internal/app/lifecycle"
	"trainingcenter/internal/app/lookup"
	"trainingcenter/internal/app/pricing"
	"trainingcenter/internal/app/repository"
	"trainingcenter/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Обработчики заявок

// SubmitApplication принимает заявку из формы мини-приложения
// @Summary Подача заявки
// @Description Валидирует данные формы, атомарно сохраняет заявку с услугами и рассылает уведомления
// @Tags Applications
// @Accept json
// @Produce json
// @Param request body dto.RawApplication true "Данные заявки"
// @Success 200 {object} dto.SubmitApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/applications [post]
func (h *Handler) SubmitApplication(c *gin.Context) {
	var raw dto.RawApplication
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректное тело запроса")
		return
	}

	draft, err := validation.ValidateSubmission(raw)
	if err != nil {
		// Пользователь получает все ошибки полей одним сообщением
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	applicationID, err := h.Lifecycle.Submit(c.Request.Context(), draft)
	if err != nil {
		var notFound *lookup.NotFoundError
		if errors.As(err, &notFound) {
			h.errorResponse(c, http.StatusBadRequest, "Выбранный вид или программа обучения не найдены")
			return
		}
		logrus.Error("Error submitting application: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Не удалось отправить заявку, попробуйте позже")
		return
	}

	c.JSON(http.StatusOK, dto.SubmitApplicationResponse{
		Status:        "success",
		Message:       "Заявка успешно отправлена",
		ApplicationID: applicationID,
	})
}

// GetApplications возвращает заявки, разбитые на активные и отработанные
// @Summary Список заявок
// @Description Возвращает заявки пользователя; в режиме администратора — все заявки
// @Tags Applications
// @Produce json
// @Param user_id query int true "Telegram ID пользователя"
// @Param admin query bool false "Режим администратора"
// @Success 200 {object} dto.ApplicationListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/applications [get]
func (h *Handler) GetApplications(c *gin.Context) {
	admin := c.Query("admin") == "true"

	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil && !admin {
		h.errorResponse(c, http.StatusBadRequest, "Не указан пользователь, по которому нужно отобразить заявки")
		return
	}

	active, completed, err := h.Lifecycle.ListForUser(userID, admin)
	if err != nil {
		logrus.Error("Error getting applications: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения заявок")
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationListResponse{
		Active:    toApplicationResponses(active),
		Completed: toApplicationResponses(completed),
	})
}

// PriceApplication — отработка заявки администратором
// @Summary Расчёт стоимости и формирование предложения
// @Description Считает итоговую сумму по введённым ценам, формирует docx-документ, переводит заявку в статус Priced и рассылает уведомления
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param request body dto.PriceApplicationRequest true "Цены по строкам заявки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/applications/{id}/price [post]
func (h *Handler) PriceApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заявки")
		return
	}

	var req dto.PriceApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Некорректные данные о ценах: "+err.Error())
		return
	}

	lines := make([]pricing.Line, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = pricing.Line{
			Program:     l.TrainingProgram,
			Rank:        l.TrainingRank,
			PeopleCount: int64(l.PeopleCount),
			UnitPrice:   l.Price,
		}
	}

	err = h.Lifecycle.PriceAndGenerateOffer(c.Request.Context(), uint(id), lines)
	switch {
	case err == nil:
		h.successResponse(c, http.StatusOK, "Коммерческое предложение сформировано", nil)
	case errors.Is(err, repository.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, "Заявка не найдена")
	case errors.Is(err, lifecycle.ErrAlreadyPriced):
		h.errorResponse(c, http.StatusConflict, "Заявка уже отработана")
	case errors.Is(err, pricing.ErrOverflow):
		h.errorResponse(c, http.StatusBadRequest, "Слишком большие значения цен или количества")
	default:
		logrus.Error("Error pricing application: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Не удалось сформировать предложение, попробуйте позже")
	}
}

func toApplicationResponses(views []repository.ApplicationView) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, len(views))
	for i, view := range views {
		services := make([]dto.ServiceInApplicationResponse, len(view.Services))
		for j, s := range view.Services {
			services[j] = dto.ServiceInApplicationResponse{
				TrainingType:    s.TrainingType,
				TrainingProgram: s.TrainingProgram,
				TrainingRank:    s.TrainingRank,
				PeopleCount:     s.PeopleCount,
				Price:           s.Price,
				LineTotal:       s.LineTotal,
			}
		}
		responses[i] = dto.ApplicationResponse{
			ID:          view.ID,
			UserID:      view.UserID,
			CompanyName: view.CompanyName,
			PhoneNumber: view.PhoneNumber,
			Email:       view.Email,
			Status:      view.Status,
			Services:    services,
		}
	}
	return responses
}
