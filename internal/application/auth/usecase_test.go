package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-portal/internal/application/auth"
	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/session"
)

type fakeGateway struct {
	resp       *dto.AuthResponse
	err        error
	registered dto.RegisterRequest
}

func (f *fakeGateway) Register(_ context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	f.registered = in
	return f.resp, f.err
}

func (f *fakeGateway) Login(context.Context, string, string) (*dto.AuthResponse, error) {
	return f.resp, f.err
}

func authResp(role string) *dto.AuthResponse {
	return &dto.AuthResponse{Token: "t1", User: dto.UserResponse{ID: "u1", Name: "Ayesha", Email: "a@x.com", Role: role}}
}

func TestLogin_Vendor_PersisteSesion(t *testing.T) {
	store := session.NewMemoryStore()
	uc := auth.NewAuthUseCase(&fakeGateway{resp: authResp(entity.RoleVendor)}, store)

	res, err := uc.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "t1", res.Token)
	assert.Equal(t, "t1", store.Token())
	u, err := uc.CurrentUser()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
	assert.True(t, uc.IsAuthenticated())
}

func TestLogin_RolNoVendor_NoPersisteYBorraSesionPrevia(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save("old", entity.User{ID: "u0", Role: entity.RoleVendor}))
	uc := auth.NewAuthUseCase(&fakeGateway{resp: authResp(entity.RoleCustomer)}, store)

	res, err := uc.Login(context.Background(), "c@x.com", "pw")

	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domain.ErrAccessDenied))
	assert.True(t, errors.Is(err, domain.ErrRoleMismatch))
	assert.Equal(t, "Access denied. Vendor account required.", err.Error())
	assert.False(t, store.HasToken())
	u, _ := store.CurrentUser()
	assert.Nil(t, u)
}

func TestRegister_FuerzaRolYRechazaOtroRol(t *testing.T) {
	gw := &fakeGateway{resp: authResp(entity.RoleAdmin)}
	store := session.NewMemoryStore()
	uc := auth.NewAuthUseCase(gw, store)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw"})

	assert.Equal(t, "Invalid account type", err.Error())
	assert.True(t, errors.Is(err, domain.ErrRoleMismatch))
	assert.False(t, store.HasToken())
}

func TestRegister_Vendor_PersisteSesion(t *testing.T) {
	store := session.NewMemoryStore()
	uc := auth.NewAuthUseCase(&fakeGateway{resp: authResp(entity.RoleVendor)}, store)

	res, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ayesha", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
	assert.True(t, store.HasToken())
}

func TestLogin_CamposVacios_RetornaErrInvalidInput(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeGateway{}, session.NewMemoryStore())

	_, err := uc.Login(context.Background(), " ", "pw")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@x.com", Password: "pw"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestLogin_RespuestaSinToken_RetornaErrInvalidResponse(t *testing.T) {
	resp := authResp(entity.RoleVendor)
	resp.Token = ""
	uc := auth.NewAuthUseCase(&fakeGateway{resp: resp}, session.NewMemoryStore())

	_, err := uc.Login(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestLogin_ErrorDelGateway_SePropaga(t *testing.T) {
	boom := errors.New("Invalid credentials")
	store := session.NewMemoryStore()
	require.NoError(t, store.Save("old", entity.User{ID: "u0", Role: entity.RoleVendor}))
	uc := auth.NewAuthUseCase(&fakeGateway{err: boom}, store)

	_, err := uc.Login(context.Background(), "a@x.com", "bad")
	assert.ErrorIs(t, err, boom)
	assert.True(t, store.HasToken(), "un error de credenciales no toca la sesión")
}

func TestLogout_BorraSesion(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save("t1", entity.User{ID: "u1", Role: entity.RoleVendor}))
	uc := auth.NewAuthUseCase(&fakeGateway{}, store)

	require.NoError(t, uc.Logout())
	assert.False(t, uc.IsAuthenticated())
}
