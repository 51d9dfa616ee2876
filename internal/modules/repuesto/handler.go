package repuesto

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

// RegisterReadRoutes is open to every authenticated role.
func (h *Handler) RegisterReadRoutes(r *gin.RouterGroup) {
	grupo := r.Group("/repuestos")
	{
		grupo.GET("", h.Listar)
		grupo.GET("/activos", h.ListarActivos)
		grupo.GET("/bajo-stock", h.ListarBajoStock)
		grupo.GET("/movimientos", h.ListarMovimientos)
		grupo.GET("/:id", h.Obtener)
	}
}

// RegisterWriteRoutes goes behind the inventory-write role gate.
func (h *Handler) RegisterWriteRoutes(r *gin.RouterGroup) {
	grupo := r.Group("/repuestos")
	{
		grupo.POST("", h.Crear)
		grupo.POST("/movimientos", h.RegistrarMovimiento)
		grupo.PUT("/:id", h.Actualizar)
		grupo.DELETE("/:id", h.Eliminar)
	}
}

func (h *Handler) Listar(c *gin.Context) {
	repuestos, err := h.service.Listar(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los repuestos")
		return
	}
	response.Success(c, http.StatusOK, repuestos)
}

func (h *Handler) ListarActivos(c *gin.Context) {
	repuestos, err := h.service.ListarActivos(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los repuestos")
		return
	}
	response.Success(c, http.StatusOK, repuestos)
}

func (h *Handler) ListarBajoStock(c *gin.Context) {
	repuestos, err := h.service.ListarBajoStock(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los repuestos")
		return
	}
	response.Success(c, http.StatusOK, repuestos)
}

func (h *Handler) Obtener(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	repuesto, err := h.service.Obtener(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repuesto no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "No se pudo obtener el repuesto")
		return
	}
	response.Success(c, http.StatusOK, repuesto)
}

func (h *Handler) Crear(c *gin.Context) {
	var req RepuestoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos inválidos", validator.Detalles(err, req))
		return
	}

	repuesto, err := h.service.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCodigoDuplicado) {
			response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "No se pudo crear el repuesto")
		return
	}
	response.Success(c, http.StatusCreated, repuesto)
}

func (h *Handler) Actualizar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	var req RepuestoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	repuesto, err := h.service.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repuesto no encontrado")
		case errors.Is(err, ErrCodigoDuplicado):
			response.Error(c, http.StatusConflict, "DUPLICATE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "No se pudo actualizar el repuesto")
		}
		return
	}
	response.Success(c, http.StatusOK, repuesto)
}

func (h *Handler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	if err := h.service.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repuesto no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "No se pudo eliminar el repuesto")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Repuesto eliminado"})
}

func (h *Handler) RegistrarMovimiento(c *gin.Context) {
	var req MovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var usuarioID *int64
	if v, exists := c.Get("user_id"); exists {
		id := v.(int64)
		usuarioID = &id
	}

	mov, err := h.service.RegistrarMovimiento(c.Request.Context(), req, usuarioID)
	if err != nil {
		switch {
		case errors.Is(err, ErrTipoInvalido), errors.Is(err, ErrCantidadInvalida):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrStockInsuficiente):
			response.Error(c, http.StatusConflict, "STOCK_INSUFICIENTE", err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Repuesto no encontrado")
		default:
			response.Error(c, http.StatusInternalServerError, "MOVEMENT_FAILED", "No se pudo registrar el movimiento")
		}
		return
	}
	response.Success(c, http.StatusCreated, mov)
}

func (h *Handler) ListarMovimientos(c *gin.Context) {
	var repuestoID int64
	if raw := c.Query("repuestoId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "repuestoId inválido")
			return
		}
		repuestoID = id
	}

	movimientos, err := h.service.ListarMovimientos(c.Request.Context(), repuestoID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los movimientos")
		return
	}
	response.Success(c, http.StatusOK, movimientos)
}
