package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
)

// RegistroHandler maneja las altas de cuentas.
type RegistroHandler struct {
	uc *usecase.RegistroUseCase
}

// NewRegistroHandler construye el handler de registro.
func NewRegistroHandler(uc *usecase.RegistroUseCase) *RegistroHandler {
	return &RegistroHandler{uc: uc}
}

// RegistrarAdmin godoc
// @Summary      Registrar SuperADMIN
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroAdminRequest  true  "datos del administrador"
// @Success      201   {object}  dto.RegistroAdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registro/admin [post]
func (h *RegistroHandler) RegistrarAdmin(c *fiber.Ctx) error {
	var in dto.RegistroAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarSuperAdmin(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarSecretaria godoc
// @Summary      Registrar secretaria de iglesia
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroSecretariaRequest  true  "datos + iglesiaId"
// @Success      201   {object}  dto.RegistroSecretariaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registro/secretaria [post]
func (h *RegistroHandler) RegistrarSecretaria(c *fiber.Ctx) error {
	var in dto.RegistroSecretariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarSecretaria(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarSecretariaAsociacion godoc
// @Summary      Registrar secretaria de asociación
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroSecretariaRequest  true  "datos + asociacionId"
// @Success      201   {object}  dto.RegistroSecretariaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registro/secretaria-asociacion [post]
func (h *RegistroHandler) RegistrarSecretariaAsociacion(c *fiber.Ctx) error {
	var in dto.RegistroSecretariaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarSecretariaAsociacion(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
