package orden

import (
	"errors"
	"net/http"
	"strconv"

	"tallervehicular/internal/pkg/response"
	"tallervehicular/internal/pkg/validator"

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
	grupo := r.Group("/ordenes")
	{
		grupo.GET("", h.Listar)
		grupo.GET("/estadisticas", h.Estadisticas)
		grupo.GET("/vehiculo/:vehiculoId", h.ListarPorVehiculo)
		grupo.GET("/:id", h.Obtener)
		grupo.POST("", h.Crear)
		grupo.PUT("/:id", h.Actualizar)
		grupo.DELETE("/:id", h.Eliminar)
		grupo.POST("/:id/servicios", h.AgregarServicio)
		grupo.POST("/:id/repuestos", h.AgregarRepuesto)
	}
}

func (h *Handler) Listar(c *gin.Context) {
	ordenes, err := h.service.Listar(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar las órdenes")
		return
	}
	response.Success(c, http.StatusOK, ordenes)
}

func (h *Handler) Estadisticas(c *gin.Context) {
	stats, err := h.service.Estadisticas(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "No se pudieron calcular las estadísticas")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListarPorVehiculo(c *gin.Context) {
	vehiculoID, err := strconv.ParseInt(c.Param("vehiculoId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	ordenes, err := h.service.ListarPorVehiculo(c.Request.Context(), vehiculoID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar las órdenes")
		return
	}
	response.Success(c, http.StatusOK, ordenes)
}

func (h *Handler) Obtener(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	orden, err := h.service.Obtener(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Orden no encontrada")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener la orden")
		return
	}
	response.Success(c, http.StatusOK, orden)
}

func (h *Handler) Crear(c *gin.Context) {
	var req CrearOrdenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", validator.Detalles(err, req))
		return
	}

	orden, err := h.service.Crear(c.Request.Context(), req, usuarioDelContexto(c))
	if err != nil {
		h.errorOrden(c, err, "CREATE_FAILED", "No se pudo crear la orden")
		return
	}
	response.Success(c, http.StatusCreated, orden)
}

func (h *Handler) Actualizar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	var req ActualizarOrdenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	orden, err := h.service.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		h.errorOrden(c, err, "UPDATE_FAILED", "No se pudo actualizar la orden")
		return
	}
	response.Success(c, http.StatusOK, orden)
}

func (h *Handler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	if err := h.service.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Orden no encontrada")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "No se pudo eliminar la orden")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Orden eliminada"})
}

func (h *Handler) AgregarServicio(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	var linea LineaServicio
	if err := c.ShouldBindJSON(&linea); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	orden, err := h.service.AgregarServicio(c.Request.Context(), id, linea)
	if err != nil {
		h.errorOrden(c, err, "APPEND_FAILED", "No se pudo agregar el servicio")
		return
	}
	response.Success(c, http.StatusOK, orden)
}

func (h *Handler) AgregarRepuesto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	var linea LineaRepuesto
	if err := c.ShouldBindJSON(&linea); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	orden, err := h.service.AgregarRepuesto(c.Request.Context(), id, linea, usuarioDelContexto(c))
	if err != nil {
		h.errorOrden(c, err, "APPEND_FAILED", "No se pudo agregar el repuesto")
		return
	}
	response.Success(c, http.StatusOK, orden)
}

func (h *Handler) errorOrden(c *gin.Context, err error, code, msg string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Recurso no encontrado")
	case errors.Is(err, ErrTipoInvalido), errors.Is(err, ErrEstadoInvalido), errors.Is(err, ErrCantidadInvalida):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrTransicionInvalida), errors.Is(err, ErrOrdenTerminal):
		response.Error(c, http.StatusConflict, "TRANSICION_INVALIDA", err.Error())
	case errors.Is(err, ErrStockInsuficiente):
		response.Error(c, http.StatusConflict, "STOCK_INSUFICIENTE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, code, msg)
	}
}

func usuarioDelContexto(c *gin.Context) *int64 {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(int64); ok {
			return &id
		}
	}
	return nil
}
