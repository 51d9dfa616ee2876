package vehiculo

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
	grupo := r.Group("/vehiculos")
	{
		grupo.GET("", h.Listar)
		grupo.GET("/buscar", h.Buscar)
		grupo.GET("/placa/:placa", h.ObtenerPorPlaca)
		grupo.GET("/cliente/:clienteId", h.ListarPorCliente)
		grupo.GET("/:id", h.Obtener)
		grupo.POST("", h.Crear)
		grupo.PUT("/:id", h.Actualizar)
		grupo.DELETE("/:id", h.Eliminar)
	}
}

func (h *Handler) Listar(c *gin.Context) {
	vehiculos, err := h.service.Listar(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los vehículos")
		return
	}
	response.Success(c, http.StatusOK, vehiculos)
}

func (h *Handler) Buscar(c *gin.Context) {
	vehiculos, err := h.service.Buscar(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "No se pudo ejecutar la búsqueda")
		return
	}
	response.Success(c, http.StatusOK, vehiculos)
}

func (h *Handler) ListarPorCliente(c *gin.Context) {
	clienteID, err := strconv.ParseInt(c.Param("clienteId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	vehiculos, err := h.service.ListarPorCliente(c.Request.Context(), clienteID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los vehículos")
		return
	}
	response.Success(c, http.StatusOK, vehiculos)
}

func (h *Handler) Obtener(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	vehiculo, err := h.service.Obtener(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehículo no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el vehículo")
		return
	}
	response.Success(c, http.StatusOK, vehiculo)
}

func (h *Handler) ObtenerPorPlaca(c *gin.Context) {
	vehiculo, err := h.service.ObtenerPorPlaca(c.Request.Context(), c.Param("placa"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehículo no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el vehículo")
		return
	}
	response.Success(c, http.StatusOK, vehiculo)
}

func (h *Handler) Crear(c *gin.Context) {
	var req VehiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", validator.Detalles(err, req))
		return
	}

	vehiculo, err := h.service.Crear(c.Request.Context(), req)
	if err != nil {
		h.errorMutacion(c, err, "CREATE_FAILED", "No se pudo crear el vehículo")
		return
	}
	response.Success(c, http.StatusCreated, vehiculo)
}

func (h *Handler) Actualizar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	var req VehiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	vehiculo, err := h.service.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehículo no encontrado")
			return
		}
		h.errorMutacion(c, err, "UPDATE_FAILED", "No se pudo actualizar el vehículo")
		return
	}
	response.Success(c, http.StatusOK, vehiculo)
}

func (h *Handler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	if err := h.service.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehículo no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "No se pudo eliminar el vehículo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Vehículo eliminado"})
}

func (h *Handler) errorMutacion(c *gin.Context, err error, code, msg string) {
	switch {
	case errors.Is(err, ErrPlacaDuplicada):
		response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, ErrPlacaRequerida), errors.Is(err, ErrLecturaNegativa):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, code, msg)
	}
}
