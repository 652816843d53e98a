package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/domain/repository"
)

// DashboardUseCase produce el resumen del dashboard para un usuario.
//
// Fuente de datos: los repositorios de clientes y facturas (lecturas
// read-only). El cálculo en sí vive en ComputeStats.
type DashboardUseCase struct {
	customers repository.CustomerRepository
	bills     repository.BillRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(customers repository.CustomerRepository, bills repository.BillRepository) *DashboardUseCase {
	return &DashboardUseCase{customers: customers, bills: bills}
}

// GetStats obtiene las dos colecciones del usuario en paralelo y recalcula
// el resumen completo sobre ellas.
func (uc *DashboardUseCase) GetStats(ctx context.Context, userID string) (*dto.DashboardStatsDTO, error) {
	type customersResult struct {
		list []*entity.Customer
		err  error
	}
	type billsResult struct {
		list []*entity.Bill
		err  error
	}

	customersCh := make(chan customersResult, 1)
	billsCh := make(chan billsResult, 1)

	go func() {
		list, err := uc.customers.ListByUser(ctx, userID)
		customersCh <- customersResult{list, err}
	}()
	go func() {
		list, err := uc.bills.ListByUser(ctx, userID)
		billsCh <- billsResult{list, err}
	}()

	customers := <-customersCh
	bills := <-billsCh

	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: clientes del usuario: %w", customers.err)
	}
	if bills.err != nil {
		return nil, fmt.Errorf("dashboard: facturas del usuario: %w", bills.err)
	}

	return ComputeStats(customers.list, bills.list), nil
}
