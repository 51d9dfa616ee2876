package mantenimiento

import (
	"errors"
	"net/http"
	"strconv"

	"tallervehicular/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	grupo := r.Group("/mantenimientos")
	{
		grupo.GET("/proximos", h.Proximos)
		grupo.GET("/vehiculo/:id", h.ObtenerPorVehiculo)
		grupo.POST("/configurar", h.Configurar)
		grupo.POST("/completar/:ordenId", h.Completar)
	}
}

func (h *Handler) Proximos(c *gin.Context) {
	filas, err := h.service.Proximos(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudo calcular el estado de mantenimiento")
		return
	}
	response.Success(c, http.StatusOK, filas)
}

func (h *Handler) ObtenerPorVehiculo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	plan, err := h.service.ObtenerPorVehiculo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "El vehículo no tiene plan de mantenimiento")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el plan")
		return
	}
	response.Success(c, http.StatusOK, plan)
}

func (h *Handler) Configurar(c *gin.Context) {
	var req ConfigurarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	plan, err := h.service.Configurar(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehículo no encontrado")
		case errors.Is(err, ErrTipoControlInvalido), errors.Is(err, ErrIntervaloRequerido):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "CONFIGURE_FAILED", "No se pudo configurar el plan")
		}
		return
	}
	response.Success(c, http.StatusOK, plan)
}

func (h *Handler) Completar(c *gin.Context) {
	ordenID, err := strconv.ParseInt(c.Param("ordenId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	plan, err := h.service.Completar(c.Request.Context(), ordenID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Orden o plan no encontrado")
		case errors.Is(err, ErrOrdenNoPreventiva), errors.Is(err, ErrOrdenNoCompletada):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "COMPLETE_FAILED", "No se pudo actualizar el plan")
		}
		return
	}
	response.Success(c, http.StatusOK, plan)
}
