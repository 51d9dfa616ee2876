package servicio

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
	grupo := r.Group("/servicios")
	{
		grupo.GET("", h.Listar)
		grupo.GET("/activos", h.ListarActivos)
		grupo.GET("/:id", h.Obtener)
		grupo.POST("", h.Crear)
		grupo.PUT("/:id", h.Actualizar)
		grupo.DELETE("/:id", h.Eliminar)
	}
}

func (h *Handler) Listar(c *gin.Context) {
	servicios, err := h.service.Listar(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los servicios")
		return
	}
	response.Success(c, http.StatusOK, servicios)
}

func (h *Handler) ListarActivos(c *gin.Context) {
	servicios, err := h.service.ListarActivos(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los servicios")
		return
	}
	response.Success(c, http.StatusOK, servicios)
}

func (h *Handler) Obtener(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	servicio, err := h.service.Obtener(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Servicio no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el servicio")
		return
	}
	response.Success(c, http.StatusOK, servicio)
}

func (h *Handler) Crear(c *gin.Context) {
	var req ServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", validator.Detalles(err, req))
		return
	}

	servicio, err := h.service.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCodigoDuplicado) {
			response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "No se pudo crear el servicio")
		return
	}
	response.Success(c, http.StatusCreated, servicio)
}

func (h *Handler) Actualizar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	var req ServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	servicio, err := h.service.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Servicio no encontrado")
		case errors.Is(err, ErrCodigoDuplicado):
			response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "No se pudo actualizar el servicio")
		}
		return
	}
	response.Success(c, http.StatusOK, servicio)
}

func (h *Handler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	if err := h.service.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Servicio no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "No se pudo eliminar el servicio")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Servicio eliminado"})
}
