package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

var (
	_ ports.AnalyticsGateway = (*AnalyticsService)(nil)
	_ ports.AnalyticsGateway = MockAnalytics{}
)

// AnalyticsService gateway del endpoint de KPIs del vendor (contrato futuro).
type AnalyticsService struct {
	c *Client
}

// NewAnalyticsService construye el gateway remoto.
func NewAnalyticsService(c *Client) *AnalyticsService {
	return &AnalyticsService{c: c}
}

// DashboardStats GET /vendor/analytics/dashboard.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	var out dto.DashboardStatsDTO
	r := request{method: http.MethodGet, route: "/vendor/analytics/dashboard", path: "/vendor/analytics/dashboard"}
	if err := s.c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MockAnalytics devuelve el payload de ejemplo mientras el backend no expone el endpoint.
type MockAnalytics struct{}

func (MockAnalytics) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &dto.DashboardStatsDTO{
		TotalSales:     89,
		TotalRevenue:   decimal.NewFromInt(245000),
		ActiveProducts: 23,
		AverageRating:  4.6,
		PendingOrders:  12,
		MonthlySales: []dto.MonthlySalesDTO{
			{Month: "Jan", Sales: decimal.NewFromInt(15000)},
			{Month: "Feb", Sales: decimal.NewFromInt(22000)},
			{Month: "Mar", Sales: decimal.NewFromInt(31000)},
			{Month: "Apr", Sales: decimal.NewFromInt(28000)},
		},
	}, nil
}
