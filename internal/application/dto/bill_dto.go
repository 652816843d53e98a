package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBillRequest body para POST /api/bills.
// Amount y Quantity son punteros para distinguir "ausente" de cero: el
// contrato exige ambos campos presentes en la creación.
type CreateBillRequest struct {
	UserID      string           `json:"userId"`
	CustomerID  string           `json:"customerId"`
	Amount      *decimal.Decimal `json:"amount"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status,omitempty"`
}

// UpdateBillStatusRequest body para PUT /api/bills/:billId/status.
type UpdateBillStatusRequest struct {
	Status string `json:"status"`
}

// BillResponse factura en respuestas.
type BillResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user"`
	CustomerID  string          `json:"customer"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    decimal.Decimal `json:"quantity"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// DeleteBillResponse respuesta de DELETE /api/bills/id/:billId.
type DeleteBillResponse struct {
	Message string        `json:"message"`
	Deleted *BillResponse `json:"deleted"`
}

// DeleteBillsResponse respuesta de DELETE /api/bills/customer/:customerId.
// deletedCount es 0 si el cliente no tenía facturas (no es un error).
type DeleteBillsResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
