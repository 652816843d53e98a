package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	BillStatusUnpaid  = "unpaid"
	BillStatusPaid    = "paid"
	BillStatusPending = "pending"
)

// ValidBillStatus indica si s pertenece al dominio de estados permitidos.
func ValidBillStatus(s string) bool {
	return s == BillStatusUnpaid || s == BillStatusPaid || s == BillStatusPending
}

// Bill representa una factura emitida a un cliente.
// CustomerID es una referencia blanda: se guarda el id canónico del cliente
// pero no se exige que exista (el borrado en cascada es quien garantiza que
// no queden facturas huérfanas).
type Bill struct {
	ID          string
	UserID      string
	CustomerID  string
	Amount      decimal.Decimal // >= 0
	Quantity    decimal.Decimal // > 0
	Description string
	Status      string // unpaid | paid | pending
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
