package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
)

// PastorHandler operaciones del pastor autenticado. El pastorID sale del
// claim referencia_id del token.
type PastorHandler struct {
	uc *usecase.PastorUseCase
}

// NewPastorHandler construye el handler de pastor.
func NewPastorHandler(uc *usecase.PastorUseCase) *PastorHandler {
	return &PastorHandler{uc: uc}
}

// Perfil godoc
// @Summary      Perfil del pastor autenticado
// @Tags         pastor
// @Produce      json
// @Success      200  {object}  dto.PerfilPastorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pastor/perfil [get]
func (h *PastorHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil(c.Context(), GetReferenciaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Iglesias godoc
// @Summary      Iglesias del distrito del pastor
// @Tags         pastor
// @Produce      json
// @Success      200  {object}  dto.IglesiaListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pastor/iglesias [get]
func (h *PastorHandler) Iglesias(c *fiber.Ctx) error {
	out, err := h.uc.Iglesias(c.Context(), GetReferenciaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Miembros godoc
// @Summary      Miembros de las iglesias del distrito del pastor
// @Tags         pastor
// @Produce      json
// @Success      200  {object}  dto.MiembroListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pastor/miembros [get]
func (h *PastorHandler) Miembros(c *fiber.Ctx) error {
	out, err := h.uc.Miembros(c.Context(), GetReferenciaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarBautismo godoc
// @Summary      Registrar bautismo oficiado por el pastor
// @Tags         pastor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarBautismoRequest  true  "miembroId, fecha, lugar"
// @Success      201   {object}  dto.BautismoDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/pastor/bautismos [post]
func (h *PastorHandler) RegistrarBautismo(c *fiber.Ctx) error {
	var in dto.RegistrarBautismoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarBautismo(c.Context(), GetReferenciaID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Bautismos godoc
// @Summary      Bautismos oficiados por el pastor
// @Tags         pastor
// @Produce      json
// @Success      200  {object}  dto.BautismoListResponse
// @Router       /api/pastor/bautismos [get]
func (h *PastorHandler) Bautismos(c *fiber.Ctx) error {
	out, err := h.uc.Bautismos(c.Context(), GetReferenciaID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Certificado godoc
// @Summary      Certificado de bautismo en PDF
// @Tags         pastor
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del bautismo"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pastor/bautismos/{id}/certificado [get]
func (h *PastorHandler) Certificado(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.CertificadoPDF(c.Context(), GetReferenciaID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="certificado-bautismo.pdf"`)
	return c.Send(pdfBytes)
}
