package auth

import (
	"errors"
	"net/http"

	"tallervehicular/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	grupo := r.Group("/autenticacion")
	{
		grupo.POST("/inicio-sesion", h.Login)
		grupo.POST("/solicitar-recuperacion", h.SolicitarRecuperacion)
		grupo.POST("/restablecer-contrasena", h.RestablecerContrasena)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("/autenticacion/registro", h.Registrar)
	r.GET("/autenticacion/usuarios", h.ListarUsuarios)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCredencialesInvalidas) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Usuario o contraseña incorrectos")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "No se pudo iniciar sesión")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Registrar(c *gin.Context) {
	var req RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Registrar(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsuarioExiste):
			response.Error(c, http.StatusConflict, "DUPLICATE", "El usuario o email ya está registrado")
		case errors.Is(err, ErrRolInvalido):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rol de usuario inválido")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "No se pudo registrar el usuario")
		}
		return
	}

	response.Success(c, http.StatusCreated, user)
}

func (h *Handler) ListarUsuarios(c *gin.Context) {
	usuarios, err := h.service.ListarUsuarios(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "No se pudieron listar los usuarios")
		return
	}
	response.Success(c, http.StatusOK, usuarios)
}

// SolicitarRecuperacion answers 200 whether or not the email exists.
func (h *Handler) SolicitarRecuperacion(c *gin.Context) {
	var req RecuperacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SolicitarRecuperacion(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusInternalServerError, "RECOVERY_FAILED", "No se pudo procesar la solicitud")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Si el correo está registrado, recibirá instrucciones de recuperación",
	})
}

func (h *Handler) RestablecerContrasena(c *gin.Context) {
	var req RestablecerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.RestablecerContrasena(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrTokenInvalido) {
			response.Error(c, http.StatusBadRequest, "INVALID_TOKEN", "Token de recuperación inválido o expirado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "RESET_FAILED", "No se pudo restablecer la contraseña")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}
