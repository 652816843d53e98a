package dto

import "github.com/shopspring/decimal"

// MonthCountDTO un punto de la serie de crecimiento de clientes.
type MonthCountDTO struct {
	Month     string `json:"month"` // Jan..Dec
	Customers int    `json:"customers"`
}

// DashboardStatsDTO resumen del dashboard para un usuario.
//
// Es el registro plano que consume la presentación: totales, desglose por
// estado de factura y la serie de 12 meses de altas de clientes.
type DashboardStatsDTO struct {
	TotalCustomers int             `json:"totalCustomers"`
	TotalBills     int             `json:"totalBills"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidBills      int             `json:"paidBills"`
	UnpaidBills    int             `json:"unpaidBills"`
	PendingBills   int             `json:"pendingBills"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	UnpaidAmount   decimal.Decimal `json:"unpaidAmount"`
	PendingAmount  decimal.Decimal `json:"pendingAmount"`
	CustomerGrowth []MonthCountDTO `json:"customerGrowth"`
}
