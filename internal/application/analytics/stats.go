// Package analytics contiene el motor de agregación que alimenta el
// dashboard: totales, desglose por estado de factura y crecimiento de
// clientes por mes.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clientes-api/internal/application/dto"
	"github.com/jhoicas/Clientes-api/internal/domain/entity"
)

// months etiquetas de los 12 buckets fijos, en orden calendario.
var months = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ComputeStats recalcula el resumen completo a partir de las colecciones
// actuales de clientes y facturas de un usuario.
//
// Es una función pura y determinista: no hace I/O y el mismo input produce
// siempre el mismo resultado. No hay agregación incremental; cada cambio en
// las colecciones dispara un recálculo total.
func ComputeStats(customers []*entity.Customer, bills []*entity.Bill) *dto.DashboardStatsDTO {
	stats := &dto.DashboardStatsDTO{
		TotalCustomers: len(customers),
		TotalBills:     len(bills),
		TotalAmount:    decimal.Zero,
		PaidAmount:     decimal.Zero,
		UnpaidAmount:   decimal.Zero,
		PendingAmount:  decimal.Zero,
	}

	for _, b := range bills {
		stats.TotalAmount = stats.TotalAmount.Add(b.Amount)
		switch b.Status {
		case entity.BillStatusPaid:
			stats.PaidBills++
			stats.PaidAmount = stats.PaidAmount.Add(b.Amount)
		case entity.BillStatusUnpaid:
			stats.UnpaidBills++
			stats.UnpaidAmount = stats.UnpaidAmount.Add(b.Amount)
		case entity.BillStatusPending:
			stats.PendingBills++
			stats.PendingAmount = stats.PendingAmount.Add(b.Amount)
		}
	}

	stats.CustomerGrowth = customerGrowth(customers)
	return stats
}

// customerGrowth agrupa las altas de clientes en 12 buckets por mes
// calendario (el año se ignora: enero de 2023 y enero de 2024 caen en el
// mismo bucket). Clientes sin fecha de alta quedan fuera. La serie siempre
// cubre los 12 meses, con cero en los vacíos.
func customerGrowth(customers []*entity.Customer) []dto.MonthCountDTO {
	counts := make(map[string]int, len(months))
	for _, c := range customers {
		if c.CreatedAt.IsZero() {
			continue
		}
		counts[c.CreatedAt.Format("Jan")]++
	}
	out := make([]dto.MonthCountDTO, 0, len(months))
	for _, m := range months {
		out = append(out, dto.MonthCountDTO{Month: m, Customers: counts[m]})
	}
	return out
}
