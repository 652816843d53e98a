package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clientes-api/internal/application/billing"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *billing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// ListByUser GET /api/customers/:userId
func (h *CustomerHandler) ListByUser(c *fiber.Ctx) error {
	list, err := h.uc.ListByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Delete DELETE /api/customers/:customerId
// Borra el cliente y, en cascada, todas sus facturas.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
