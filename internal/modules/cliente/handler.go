package cliente

import (
	"errors"
	"net/http"
	"strconv"

	"tallervehicular/internal/domain"
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
	grupo := r.Group("/clientes")
	{
		grupo.GET("", h.Listar)
		grupo.GET("/buscar", h.Buscar)
		grupo.GET("/documento/:numero", h.ObtenerPorDocumento)
		grupo.GET("/ruc/:ruc", h.ObtenerPorRUC)
		grupo.GET("/externo/ruc/:ruc", h.ConsultarRUCExterno)
		grupo.GET("/externo/dni/:dni", h.ConsultarDNIExterno)
		grupo.GET("/:id", h.Obtener)
		grupo.POST("", h.Crear)
		grupo.PUT("/:id", h.Actualizar)
		grupo.DELETE("/:id", h.Eliminar)
	}
}

func (h *Handler) Listar(c *gin.Context) {
	clientes, err := h.service.Listar(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los clientes")
		return
	}
	response.Success(c, http.StatusOK, clientes)
}

func (h *Handler) Buscar(c *gin.Context) {
	clientes, err := h.service.Buscar(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "No se pudo ejecutar la búsqueda")
		return
	}
	response.Success(c, http.StatusOK, clientes)
}

func (h *Handler) Obtener(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	cliente, err := h.service.Obtener(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cliente no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el cliente")
		return
	}
	response.Success(c, http.StatusOK, cliente)
}

func (h *Handler) ObtenerPorDocumento(c *gin.Context) {
	cliente, err := h.service.ObtenerPorDocumento(c.Request.Context(), c.Param("numero"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cliente no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el cliente")
		return
	}
	response.Success(c, http.StatusOK, cliente)
}

func (h *Handler) ObtenerPorRUC(c *gin.Context) {
	cliente, err := h.service.ObtenerPorRUC(c.Request.Context(), c.Param("ruc"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cliente no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el cliente")
		return
	}
	response.Success(c, http.StatusOK, cliente)
}

func (h *Handler) Crear(c *gin.Context) {
	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", validator.Detalles(err, req))
		return
	}

	cliente, err := h.service.Crear(c.Request.Context(), req)
	if err != nil {
		h.errorMutacion(c, err, "CREATE_FAILED", "No se pudo crear el cliente")
		return
	}
	response.Success(c, http.StatusCreated, cliente)
}

func (h *Handler) Actualizar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cliente, err := h.service.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cliente no encontrado")
			return
		}
		h.errorMutacion(c, err, "UPDATE_FAILED", "No se pudo actualizar el cliente")
		return
	}
	response.Success(c, http.StatusOK, cliente)
}

func (h *Handler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	if err := h.service.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cliente no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "No se pudo eliminar el cliente")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Cliente eliminado"})
}

func (h *Handler) ConsultarRUCExterno(c *gin.Context) {
	result, err := h.service.ConsultarRUCExterno(c.Request.Context(), c.Param("ruc"))
	if err != nil {
		h.errorPadron(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) ConsultarDNIExterno(c *gin.Context) {
	result, err := h.service.ConsultarDNIExterno(c.Request.Context(), c.Param("dni"))
	if err != nil {
		h.errorPadron(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) errorMutacion(c *gin.Context, err error, code, msg string) {
	switch {
	case errors.Is(err, ErrDocumentoDuplicado):
		response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrTipoDocumentoInvalido),
		errors.Is(err, domain.ErrDocumentoRequerido),
		errors.Is(err, domain.ErrRazonSocialRequerida),
		errors.Is(err, domain.ErrNombresRequeridos):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, code, msg)
	}
}

func (h *Handler) errorPadron(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPadronNoEncontrado):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Documento no encontrado en el padrón")
	case errors.Is(err, ErrPadronNoDisponible):
		response.Error(c, http.StatusBadGateway, "EXTERNAL_UNAVAILABLE", "Servicio de consulta no disponible")
	default:
		response.Error(c, http.StatusBadGateway, "EXTERNAL_UNAVAILABLE", "Error consultando el padrón")
	}
}
