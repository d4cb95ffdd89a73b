package analytics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-portal/internal/application/analytics"
	"github.com/jhoicas/vendor-portal/internal/application/ports/portstest"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/api"
)

func brandOf(b *entity.Brand, err error) analytics.BrandSourceFunc {
	return func(context.Context) (*entity.Brand, error) { return b, err }
}

func TestGetSummary_Aprobada(t *testing.T) {
	uc := analytics.NewDashboardUseCase(brandOf(&entity.Brand{Name: "Acme", Status: entity.BrandStatusApproved}, nil), api.MockAnalytics{}, nil)

	d, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Nil(t, d.Notice)
	assert.Equal(t, "Acme", d.Brand.Name)
	assert.Len(t, d.Stats, 5)
}

func TestGetSummary_FalloDeStats_MuestraDashboard(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		brandOf(&entity.Brand{Status: entity.BrandStatusApproved}, nil),
		&portstest.Analytics{Err: errors.New("endpoint inexistente")},
		nil,
	)

	d, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0", d.Stats[0].Value)
}

func TestGetSummary_FalloDeMarca_TrataComoSinMarca(t *testing.T) {
	uc := analytics.NewDashboardUseCase(brandOf(nil, errors.New("timeout")), api.MockAnalytics{}, nil)

	d, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, d.Notice)
	assert.Equal(t, "info", d.Notice.Severity)
}

func TestGetSummary_401_RetornaError(t *testing.T) {
	unauthorized := fmt.Errorf("api: %w", domain.ErrUnauthorized)
	uc := analytics.NewDashboardUseCase(brandOf(nil, unauthorized), api.MockAnalytics{}, nil)

	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
