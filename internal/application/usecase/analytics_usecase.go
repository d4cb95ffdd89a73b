package usecase

import (
	"context"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

// AnalyticsUseCase KPIs del dashboard del vendor.
type AnalyticsUseCase struct {
	gateway ports.AnalyticsGateway
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(gateway ports.AnalyticsGateway) *AnalyticsUseCase {
	return &AnalyticsUseCase{gateway: gateway}
}

// DashboardStats obtiene los KPIs. La serie mensual nunca es nil.
func (uc *AnalyticsUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats, err := uc.gateway.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats.MonthlySales == nil {
		stats.MonthlySales = []dto.MonthlySalesDTO{}
	}
	return stats, nil
}
