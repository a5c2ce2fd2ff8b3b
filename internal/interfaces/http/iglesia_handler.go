package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/iglesias-api/internal/application/dto"
	"github.com/tu-usuario/iglesias-api/internal/application/usecase"
)

// IglesiaHandler maneja el CRUD de iglesias.
type IglesiaHandler struct {
	uc *usecase.IglesiaUseCase
}

// NewIglesiaHandler construye el handler de iglesias.
func NewIglesiaHandler(uc *usecase.IglesiaUseCase) *IglesiaHandler {
	return &IglesiaHandler{uc: uc}
}

// List godoc
// @Summary      Listar iglesias con conteos
// @Tags         iglesias
// @Produce      json
// @Success      200  {object}  dto.IglesiaListResponse
// @Router       /api/iglesias [get]
func (h *IglesiaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear iglesia
// @Tags         iglesias
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearIglesiaRequest  true  "nombre, codigo, direccion, distritoId"
// @Success      201   {object}  dto.IglesiaDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/iglesias [post]
func (h *IglesiaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearIglesiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar iglesia (merge parcial)
// @Tags         iglesias
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la iglesia"
// @Param        body  body  dto.EditarIglesiaRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.IglesiaDataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/iglesias/{id} [put]
func (h *IglesiaHandler) Update(c *fiber.Ctx) error {
	var in dto.EditarIglesiaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Editar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar iglesia sin dependencias
// @Tags         iglesias
// @Produce      json
// @Param        id  path  string  true  "ID de la iglesia"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/iglesias/{id} [delete]
func (h *IglesiaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Iglesia eliminada exitosamente"})
}
