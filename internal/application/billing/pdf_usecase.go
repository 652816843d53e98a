package billing

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/domain"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo imprimible de una factura.
type ReceiptUseCase struct {
	bills     repository.BillRepository
	customers repository.CustomerRepository
	generator ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	bills repository.BillRepository,
	customers repository.CustomerRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{bills: bills, customers: customers, generator: generator}
}

// Generate devuelve los bytes del PDF del recibo.
// El cliente referenciado puede no existir (referencia blanda); en ese caso
// el recibo se genera sin el bloque de datos del cliente.
func (uc *ReceiptUseCase) Generate(ctx context.Context, billID string) ([]byte, error) {
	bill, err := uc.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByID(ctx, bill.CustomerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReceiptPDF(ctx, bill, customer)
}
