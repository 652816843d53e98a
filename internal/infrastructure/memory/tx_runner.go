package memory

import (
	"context"

	"github.com/jhoicas/Clientes-api/internal/application/billing"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner variante en memoria del runner transaccional: ejecuta el callback
// directo sobre los repositorios. No hay atomicidad real; son los dos pasos
// secuenciales del diseño base (cliente primero, facturas después).
type TxRunner struct {
	customers repository.CustomerRepository
	bills     repository.BillRepository
}

// NewTxRunner construye el runner sobre los repositorios dados.
func NewTxRunner(customers repository.CustomerRepository, bills repository.BillRepository) *TxRunner {
	return &TxRunner{customers: customers, bills: bills}
}

// Run ejecuta fn con los repositorios del runner.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	bills repository.BillRepository,
) error) error {
	return fn(r.customers, r.bills)
}
