package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO KPIs del dashboard del vendor. Contrato esperado de
// GET /vendor/analytics/dashboard; hoy se sirve un payload de ejemplo.
type DashboardStatsDTO struct {
	TotalSales     int               `json:"totalSales"`
	TotalRevenue   decimal.Decimal   `json:"totalRevenue"`
	ActiveProducts int               `json:"activeProducts"`
	AverageRating  float64           `json:"averageRating"`
	PendingOrders  int               `json:"pendingOrders"`
	MonthlySales   []MonthlySalesDTO `json:"monthlySales"`
}

// MonthlySalesDTO punto de la serie mensual.
type MonthlySalesDTO struct {
	Month string          `json:"month"`
	Sales decimal.Decimal `json:"sales"`
}
