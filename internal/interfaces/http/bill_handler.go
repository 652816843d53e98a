package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Clientes-api/internal/application/billing"
	"github.com/jhoicas/Clientes-api/internal/application/dto"
)

// BillHandler maneja las peticiones HTTP de facturas.
type BillHandler struct {
	uc      *billing.BillUseCase
	receipt *billing.ReceiptUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *billing.BillUseCase, receipt *billing.ReceiptUseCase) *BillHandler {
	return &BillHandler{uc: uc, receipt: receipt}
}

// Create POST /api/bills
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// ListByUser GET /api/bills/user/:userId/all
// Todas las facturas del usuario; alimenta el dashboard.
func (h *BillHandler) ListByUser(c *fiber.Ctx) error {
	list, err := h.uc.ListByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListByCustomer GET /api/bills/:customerId
func (h *BillHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.ListByCustomer(c.Context(), c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UpdateStatus PUT /api/bills/:billId/status
func (h *BillHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateBillStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	bill, err := h.uc.UpdateStatus(c.Context(), c.Params("billId"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bill)
}

// Delete DELETE /api/bills/id/:billId
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("billId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteByCustomer DELETE /api/bills/customer/:customerId
// Idempotente: cero coincidencias responde {deletedCount: 0}.
func (h *BillHandler) DeleteByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.DeleteByCustomer(c.Context(), c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt GET /api/bills/id/:billId/pdf
// Devuelve el recibo imprimible de la factura.
func (h *BillHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipt.Generate(c.Context(), c.Params("billId"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}
