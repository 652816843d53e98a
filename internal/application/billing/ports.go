package billing

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma unidad de
// trabajo. La implementación PostgreSQL envuelve el callback en una
// transacción; la implementación en memoria lo ejecuta directo (dos pasos
// secuenciales, el comportamiento base que acepta el diseño).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		bills repository.BillRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación imprimible de una factura.
// customer puede ser nil: la referencia factura→cliente es blanda y el
// cliente puede ya no existir.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, bill *entity.Bill, customer *entity.Customer) ([]byte, error)
}
