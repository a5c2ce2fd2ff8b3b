package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
)

// SecretariaHandler operaciones de la secretaria de iglesia. La iglesia se
// resuelve desde la cuenta del usuario autenticado.
type SecretariaHandler struct {
	uc *usecase.SecretariaUseCase
}

// NewSecretariaHandler construye el handler de secretaria.
func NewSecretariaHandler(uc *usecase.SecretariaUseCase) *SecretariaHandler {
	return &SecretariaHandler{uc: uc}
}

// PerfilIglesia godoc
// @Summary      Iglesia asignada a la secretaria
// @Tags         secretaria
// @Produce      json
// @Success      200  {object}  dto.PerfilIglesiaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/secretaria/iglesia [get]
func (h *SecretariaHandler) PerfilIglesia(c *fiber.Ctx) error {
	out, err := h.uc.PerfilIglesia(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Miembros godoc
// @Summary      Miembros de la iglesia asignada
// @Tags         secretaria
// @Produce      json
// @Success      200  {object}  dto.MiembroListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/secretaria/miembros [get]
func (h *SecretariaHandler) Miembros(c *fiber.Ctx) error {
	out, err := h.uc.Miembros(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CrearEvento godoc
// @Summary      Crear evento en la iglesia asignada
// @Tags         secretaria
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEventoRequest  true  "nombre, fechaInicio, fechaFin"
// @Success      201   {object}  dto.EventoDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/secretaria/eventos [post]
func (h *SecretariaHandler) CrearEvento(c *fiber.Ctx) error {
	var in dto.CrearEventoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearEvento(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
