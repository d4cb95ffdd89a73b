package portal_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/application/ports/portstest"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
)

func fillWizard(t *testing.T, w *portal.RegistrationWizard) {
	t.Helper()
	require.NoError(t, w.Apply(map[string]string{
		"name":               "Acme",
		"description":        "Shoes",
		"legalName":          "Acme Pvt",
		"taxId":              "T-1",
		"registrationNumber": "R-1",
		"businessType":       "llc",
		"accountName":        "Acme",
		"accountNumber":      "0001",
		"bankName":           "HBL",
	}))
}

func TestWizard_NavegacionAcotada(t *testing.T) {
	w := portal.NewRegistrationWizard()

	assert.False(t, w.Back(), "Back deshabilitado en el primer paso")
	assert.Equal(t, 0, w.Step())
	assert.True(t, w.Next())
	assert.True(t, w.Next())
	assert.False(t, w.Next(), "Next deshabilitado en el último paso")
	assert.Equal(t, 2, w.Step())

	v := w.View()
	assert.Equal(t, "Bank Information", v.Label)
	assert.True(t, v.IsLast)
	assert.False(t, v.CanNext)
	assert.True(t, v.CanBack)

	assert.True(t, w.Back())
	assert.Equal(t, 1, w.Step())
}

func TestWizard_NextNoValida(t *testing.T) {
	w := portal.NewRegistrationWizard()
	assert.True(t, w.Next(), "se puede avanzar con el paso vacío")
	assert.Len(t, w.Missing(), 9)
}

func TestWizard_CampoDesconocido_NoAplicaNada(t *testing.T) {
	w := portal.NewRegistrationWizard()
	err := w.Apply(map[string]string{"name": "Acme", "color": "gold"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, w.View().Form.Name)
}

func TestWizard_Submit_SoloEnElUltimoPaso(t *testing.T) {
	w := portal.NewRegistrationWizard()
	fillWizard(t, w)
	gw := &portstest.Brands{}

	_, _, err := w.Submit(context.Background(), usecase.NewBrandUseCase(gw, nil), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gw.Created)
}

func TestWizard_Submit_ReportaTodosLosFaltantes(t *testing.T) {
	w := portal.NewRegistrationWizard()
	require.NoError(t, w.Set("name", "Acme"))
	w.Next()
	w.Next()

	_, _, err := w.Submit(context.Background(), usecase.NewBrandUseCase(&portstest.Brands{}, nil), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWizardIncomplete))
	assert.Contains(t, err.Error(), "description, legalName, taxId")
	assert.NotContains(t, err.Error(), "iban")
}

func TestWizard_Submit_RegistraYRefrescaMarca(t *testing.T) {
	f := newFixture(t, entity.RoleVendor)
	_, err := f.ctx.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	brands := usecase.NewBrandUseCase(f.brands, f.store)

	w := portal.NewRegistrationWizard()
	fillWizard(t, w)
	logo := &dto.Attachment{Filename: "logo.png", ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}
	w.SetLogo(logo)
	w.Next()
	w.Next()

	// El backend devuelve la marca recién creada en la siguiente consulta.
	f.brands.Items = []dto.BrandResponse{ownedBrand(entity.BrandStatusPending)}
	route, brand, err := w.Submit(context.Background(), brands, f.ctx)
	require.NoError(t, err)

	assert.Equal(t, ports.RouteDashboard, route)
	assert.Equal(t, "Acme", brand.Name)
	require.Len(t, f.brands.Created, 1)
	assert.Equal(t, "HBL", f.brands.Created[0].BankDetails.BankName)
	assert.Same(t, logo, f.brands.Logos[0])
	require.NotNil(t, f.ctx.Snapshot().Brand)
	assert.True(t, f.ctx.Snapshot().Brand.IsPending())
}
