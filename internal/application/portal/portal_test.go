package portal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-portal/internal/application/auth"
	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/ports/portstest"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/session"
)

type fixture struct {
	store  *session.MemoryStore
	auth   *portstest.Auth
	brands *portstest.Brands
	ctx    *portal.AuthContext
}

func newFixture(t *testing.T, role string) *fixture {
	t.Helper()
	f := &fixture{
		store: session.NewMemoryStore(),
		auth: &portstest.Auth{Resp: &dto.AuthResponse{
			Token: "t1",
			User:  dto.UserResponse{ID: "u1", Name: "Ayesha", Email: "a@x.com", Role: role},
		}},
		brands: &portstest.Brands{},
	}
	f.ctx = portal.NewAuthContext(
		auth.NewAuthUseCase(f.auth, f.store),
		usecase.NewBrandUseCase(f.brands, f.store),
		nil,
	)
	return f
}

func (f *fixture) persist(t *testing.T, role string) {
	t.Helper()
	require.NoError(t, f.store.Save("t1", entity.User{ID: "u1", Name: "Ayesha", Role: role}))
}

func ownedBrand(status string) dto.BrandResponse {
	return dto.BrandResponse{ID: "b1", Name: "Acme", Status: status, Owner: dto.Ref{ID: "u1"}}
}
