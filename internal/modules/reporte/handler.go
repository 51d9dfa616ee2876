package reporte

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	grupo := r.Group("/reportes")
	{
		grupo.GET("/vehiculo/:id", h.Vehiculo)
		grupo.GET("/periodo", h.Periodo)
		grupo.GET("/repuestos", h.Repuestos)
		grupo.GET("/estadisticas", h.Estadisticas)
		grupo.GET("/preventivos", h.Preventivos)
	}
}

func (h *Handler) Vehiculo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "ID inválido")
		return
	}

	reporte, err := h.service.Vehiculo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehículo no encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "No se pudo generar el reporte")
		return
	}
	h.entregar(c, reporte, reporte.documento(), "reporte-vehiculo")
}

func (h *Handler) Periodo(c *gin.Context) {
	inicio, err := time.Parse("2006-01-02", c.Query("inicio"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "inicio debe tener formato YYYY-MM-DD")
		return
	}
	fin, err := time.Parse("2006-01-02", c.Query("fin"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "fin debe tener formato YYYY-MM-DD")
		return
	}
	if fin.Before(inicio) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "fin no puede ser anterior a inicio")
		return
	}

	reporte, err := h.service.Periodo(c.Request.Context(), inicio, fin)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "No se pudo generar el reporte")
		return
	}
	h.entregar(c, reporte, reporte.documento(), "reporte-periodo")
}

func (h *Handler) Repuestos(c *gin.Context) {
	reporte, err := h.service.Repuestos(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "No se pudo generar el reporte")
		return
	}
	h.entregar(c, reporte, reporte.documento(), "reporte-repuestos")
}

func (h *Handler) Estadisticas(c *gin.Context) {
	reporte, err := h.service.Estadisticas(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "No se pudo generar el reporte")
		return
	}
	h.entregar(c, reporte, reporte.documento(), "reporte-estadisticas")
}

func (h *Handler) Preventivos(c *gin.Context) {
	reporte, err := h.service.Preventivos(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "No se pudo generar el reporte")
		return
	}
	h.entregar(c, reporte, reporte.documento(), "reporte-preventivos")
}

// entregar picks the representation: JSON by default, rendered HTML or
// printed PDF on ?formato=.
func (h *Handler) entregar(c *gin.Context, modelo any, doc documento, nombre string) {
	switch c.Query("formato") {
	case "", "json":
		response.Success(c, http.StatusOK, modelo)
	case "html":
		html, err := renderHTML(doc)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "RENDER_FAILED", "No se pudo renderizar el reporte")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
	case "pdf":
		html, err := renderHTML(doc)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "RENDER_FAILED", "No se pudo renderizar el reporte")
			return
		}
		pdf, err := renderPDF(c.Request.Context(), html)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "RENDER_FAILED", "No se pudo generar el PDF")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+nombre+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "formato debe ser json, html o pdf")
	}
}
