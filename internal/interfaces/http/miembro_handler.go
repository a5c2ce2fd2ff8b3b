package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
)

// MiembroHandler operaciones del miembro autenticado. El miembroID sale del
// claim referencia_id del token.
type MiembroHandler struct {
	uc *usecase.MiembroUseCase
}

// NewMiembroHandler construye el handler de miembro.
func NewMiembroHandler(uc *usecase.MiembroUseCase) *MiembroHandler {
	return &MiembroHandler{uc: uc}
}

// CrearPeticion godoc
// @Summary      Registrar petición de oración
// @Tags         miembro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPeticionRequest  true  "texto"
// @Success      201   {object}  dto.PeticionDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/miembro/peticiones [post]
func (h *MiembroHandler) CrearPeticion(c *fiber.Ctx) error {
	var in dto.CrearPeticionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearPeticion(c.Context(), GetReferenciaID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Peticiones godoc
// @Summary      Peticiones de oración del miembro
// @Tags         miembro
// @Produce      json
// @Success      200  {object}  dto.PeticionListResponse
// @Router       /api/miembro/peticiones [get]
func (h *MiembroHandler) Peticiones(c *fiber.Ctx) error {
	out, err := h.uc.Peticiones(c.Context(), GetReferenciaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CrearCita godoc
// @Summary      Solicitar visita pastoral
// @Tags         miembro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearCitaRequest  true  "motivo, fechaPropuesta"
// @Success      201   {object}  dto.CitaDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/miembro/citas [post]
func (h *MiembroHandler) CrearCita(c *fiber.Ctx) error {
	var in dto.CrearCitaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CrearCita(c.Context(), GetReferenciaID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Citas godoc
// @Summary      Citas de visita del miembro
// @Tags         miembro
// @Produce      json
// @Success      200  {object}  dto.CitaListResponse
// @Router       /api/miembro/citas [get]
func (h *MiembroHandler) Citas(c *fiber.Ctx) error {
	out, err := h.uc.Citas(c.Context(), GetReferenciaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
