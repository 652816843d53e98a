package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clientes-api/internal/application/analytics"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
	"github.com/jhoicas/Clientes-api/internal/infrastructure/memory"
)

func bill(status string, amount int64) *entity.Bill {
	return &entity.Bill{
		ID:       "b-" + status,
		UserID:   "u1",
		Amount:   decimal.NewFromInt(amount),
		Quantity: decimal.NewFromInt(1),
		Status:   status,
	}
}

func customerCreatedAt(id string, at time.Time) *entity.Customer {
	return &entity.Customer{ID: id, UserID: "u1", FirstName: "C", Email: id + "@x.com", CreatedAt: at}
}

// TestComputeStats_VectorDeReferencia valida el vector del desglose por
// estado: 100 paid + 50 unpaid + 25 pending.
func TestComputeStats_VectorDeReferencia(t *testing.T) {
	bills := []*entity.Bill{
		bill(entity.BillStatusPaid, 100),
		bill(entity.BillStatusUnpaid, 50),
		bill(entity.BillStatusPending, 25),
	}

	stats := analytics.ComputeStats(nil, bills)

	assert.Equal(t, 0, stats.TotalCustomers)
	assert.Equal(t, 3, stats.TotalBills)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(175)), "totalAmount = %s", stats.TotalAmount)
	assert.True(t, stats.PaidAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.UnpaidAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.PendingAmount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 1, stats.PaidBills)
	assert.Equal(t, 1, stats.UnpaidBills)
	assert.Equal(t, 1, stats.PendingBills)
}

// TestComputeStats_CrecimientoPorMes: los buckets mezclan años (enero de
// 2023 y enero de 2024 caen juntos) y la serie cubre los 12 meses en orden
// calendario con cero en los vacíos.
func TestComputeStats_CrecimientoPorMes(t *testing.T) {
	customers := []*entity.Customer{
		customerCreatedAt("c1", time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)),
		customerCreatedAt("c2", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)),
	}

	stats := analytics.ComputeStats(customers, nil)

	require.Len(t, stats.CustomerGrowth, 12)
	expected := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, p := range stats.CustomerGrowth {
		assert.Equal(t, expected[i], p.Month)
		if p.Month == "Jan" {
			assert.Equal(t, 2, p.Customers)
		} else {
			assert.Equal(t, 0, p.Customers, "mes %s debe ir en cero", p.Month)
		}
	}
}

// TestComputeStats_SinFechaDeAlta: un cliente sin createdAt cuenta en los
// totales pero queda fuera del bucketing por mes.
func TestComputeStats_SinFechaDeAlta(t *testing.T) {
	customers := []*entity.Customer{
		{ID: "c1", UserID: "u1", FirstName: "A", Email: "a@x.com"}, // CreatedAt cero
	}

	stats := analytics.ComputeStats(customers, nil)

	assert.Equal(t, 1, stats.TotalCustomers)
	for _, p := range stats.CustomerGrowth {
		assert.Equal(t, 0, p.Customers)
	}
}

// TestComputeStats_Vacio: colecciones vacías producen ceros y la serie
// completa de 12 meses.
func TestComputeStats_Vacio(t *testing.T) {
	stats := analytics.ComputeStats(nil, nil)

	assert.Equal(t, 0, stats.TotalCustomers)
	assert.Equal(t, 0, stats.TotalBills)
	assert.True(t, stats.TotalAmount.IsZero())
	assert.True(t, stats.PaidAmount.IsZero())
	assert.True(t, stats.UnpaidAmount.IsZero())
	assert.True(t, stats.PendingAmount.IsZero())
	require.Len(t, stats.CustomerGrowth, 12)
}

// TestComputeStats_Determinista: el mismo input produce siempre el mismo
// resumen.
func TestComputeStats_Determinista(t *testing.T) {
	customers := []*entity.Customer{
		customerCreatedAt("c1", time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)),
	}
	bills := []*entity.Bill{bill(entity.BillStatusPaid, 100), bill(entity.BillStatusPending, 7)}

	first := analytics.ComputeStats(customers, bills)
	second := analytics.ComputeStats(customers, bills)

	assert.Equal(t, first, second)
}

// TestDashboardUseCase_GetStats: el caso de uso junta las dos colecciones
// del usuario (y solo las suyas) antes de recalcular.
func TestDashboardUseCase_GetStats(t *testing.T) {
	ctx := context.Background()
	customers := memory.NewCustomerRepository()
	bills := memory.NewBillRepository()

	require.NoError(t, customers.Create(ctx, customerCreatedAt("c1", time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, customers.Create(ctx, &entity.Customer{
		ID: "c2", UserID: "otro", FirstName: "B", Email: "b@x.com",
		CreatedAt: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, bills.Create(ctx, bill(entity.BillStatusPaid, 100)))

	uc := analytics.NewDashboardUseCase(customers, bills)
	stats, err := uc.GetStats(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalCustomers, "los clientes de otros usuarios no cuentan")
	assert.Equal(t, 1, stats.TotalBills)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(100)))
}
