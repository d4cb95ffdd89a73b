// Package analytics arma el dashboard del vendor a partir de la marca y los KPIs.
package analytics

import (
	"context"
	"errors"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/pkg/logger"
)

// BrandSourceFunc adapta una función a portal.BrandSource (p.ej. la marca ya
// cargada en el AuthContext).
type BrandSourceFunc func(ctx context.Context) (*entity.Brand, error)

func (f BrandSourceFunc) GetMyBrand(ctx context.Context) (*entity.Brand, error) { return f(ctx) }

// DashboardUseCase obtiene marca y KPIs en paralelo y construye la vista.
//
// Los KPIs se piden siempre, igual que la marca; solo se muestran si la marca
// está aprobada. Un fallo de KPIs no impide mostrar el dashboard.
type DashboardUseCase struct {
	brands portal.BrandSource
	stats  ports.AnalyticsGateway
	log    *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(brands portal.BrandSource, stats ports.AnalyticsGateway, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{brands: brands, stats: stats, log: log.Named("dashboard")}
}

// GetSummary construye la vista. Dos llamadas en paralelo:
//  1. GetMyBrand      → rama del dashboard (sin marca, pendiente, rechazada, aprobada)
//  2. DashboardStats  → tarjetas y serie mensual
//
// Un 401 en cualquiera de las dos se devuelve como error; el resto se registra.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*portal.Dashboard, error) {
	type brandResult struct {
		brand *entity.Brand
		err   error
	}
	type statsResult struct {
		stats *dto.DashboardStatsDTO
		err   error
	}

	brandCh := make(chan brandResult, 1)
	statsCh := make(chan statsResult, 1)

	go func() {
		b, err := uc.brands.GetMyBrand(ctx)
		brandCh <- brandResult{b, err}
	}()
	go func() {
		s, err := uc.stats.DashboardStats(ctx)
		statsCh <- statsResult{s, err}
	}()

	br := <-brandCh
	sr := <-statsCh

	for _, err := range []error{br.err, sr.err} {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
	}
	if br.err != nil {
		uc.log.Warn().Err(br.err).Msg("no se pudo obtener la marca")
	}
	if sr.err != nil {
		uc.log.Warn().Err(sr.err).Msg("no se pudieron obtener los KPIs")
	}

	d := portal.BuildDashboard(br.brand, sr.stats)
	return &d, nil
}
