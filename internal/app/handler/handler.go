package handler

import (
	"trainingcenter/internal/app/dto"
	"trainingcenter/internal/app/lifecycle"
	"trainingcenter/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// Handler содержит обработчики REST API мини-приложения
type Handler struct {
	Repository *repository.Repository
	Lifecycle  *lifecycle.Manager
}

func New(r *repository.Repository, m *lifecycle.Manager) *Handler {
	return &Handler{Repository: r, Lifecycle: m}
}

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// ============ Справочники (для каскадных селектов формы) ============
	api.GET("/training-types", h.GetTrainingTypes)
	api.GET("/programs", h.GetPrograms)

	// ============ Заявки ============
	applications := api.Group("/applications")
	{
		applications.POST("", h.SubmitApplication)
		applications.GET("", h.GetApplications)
		applications.POST("/:id/price", h.PriceApplication)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "error",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}
