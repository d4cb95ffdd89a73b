// Package portal contiene el estado de sesión del portal del vendor y la lógica
// de páginas compartida por el BFF y el CLI: contexto de auth, guarda de rutas,
// asistente de registro de marca, selectores de archivos y vista del dashboard.
package portal

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/pkg/logger"
)

// Authenticator casos de uso de auth que consume el contexto.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResult, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResult, error)
	Logout() error
	CurrentUser() (*entity.User, error)
}

// BrandSource devuelve la marca del usuario de la sesión (nil si no tiene).
type BrandSource interface {
	GetMyBrand(ctx context.Context) (*entity.Brand, error)
}

// State foto inmutable del contexto.
type State struct {
	User            *entity.User
	Brand           *entity.Brand
	Loading         bool
	IsAuthenticated bool
	Route           string
}

var _ ports.Navigator = (*AuthContext)(nil)

// AuthContext estado de auth del proceso: usuario, marca y si la sesión
// persistida todavía se está resolviendo. Seguro para uso concurrente.
type AuthContext struct {
	auth   Authenticator
	brands BrandSource
	log    *logger.Logger

	mu      sync.RWMutex
	user    *entity.User
	brand   *entity.Brand
	loading bool
	route   string
	// gen cambia en cada login, registro o cierre de sesión. Una consulta de
	// marca iniciada con otra generación pertenece a otra sesión.
	gen uint64

	ready     chan struct{}
	readyOnce sync.Once
}

// NewAuthContext construye el contexto en estado Loading.
func NewAuthContext(auth Authenticator, brands BrandSource, log *logger.Logger) *AuthContext {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthContext{
		auth:    auth,
		brands:  brands,
		log:     log.Named("auth_context"),
		loading: true,
		ready:   make(chan struct{}),
	}
}

// Start resuelve la sesión persistida. Solo un usuario vendor se adopta; en ese
// caso se busca también su marca. Al terminar, Loading pasa a false y Ready se cierra.
// Si mientras tanto hubo un login o logout, el resultado de Start se descarta.
func (a *AuthContext) Start(ctx context.Context) {
	defer a.markReady()

	gen := a.generation()
	user, err := a.auth.CurrentUser()
	if err != nil {
		a.log.Warn().Err(err).Msg("no se pudo leer el usuario de la sesión")
	}
	if !user.IsVendor() {
		return
	}
	a.mu.Lock()
	if a.gen != gen {
		a.mu.Unlock()
		return
	}
	a.user = copyUser(user)
	a.mu.Unlock()

	a.fetchBrand(ctx, gen)
}

func (a *AuthContext) markReady() {
	a.mu.Lock()
	a.loading = false
	a.mu.Unlock()
	a.readyOnce.Do(func() { close(a.ready) })
}

// Ready se cierra cuando termina la resolución inicial de Start.
func (a *AuthContext) Ready() <-chan struct{} {
	return a.ready
}

func (a *AuthContext) generation() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.gen
}

// fetchBrand consulta la marca sin sostener el lock: un 401 durante la llamada
// invoca RedirectToLogin, que también lo toma. El resultado solo se adopta si la
// sesión sigue siendo la de gen y la marca es del usuario actual. Un fallo se
// registra y deja la marca anterior.
func (a *AuthContext) fetchBrand(ctx context.Context, gen uint64) {
	b, err := a.brands.GetMyBrand(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("no se pudo obtener la marca")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case a.gen != gen || a.user == nil:
		a.log.Debug().Msg("marca descartada: la sesión cambió durante la consulta")
	case b != nil && b.Owner != a.user.ID:
		a.log.Warn().Str("brand_id", b.ID).Str("owner", b.Owner).Str("user_id", a.user.ID).Msg("marca descartada: pertenece a otro usuario")
	default:
		a.brand = b
	}
}

// Login autentica y, ya confirmadas las credenciales, refresca la marca.
// El refresco corre después del login en la misma goroutine, nunca en paralelo.
func (a *AuthContext) Login(ctx context.Context, email, password string) (*dto.AuthResult, error) {
	res, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrRoleMismatch) {
			a.drop(ports.RouteLogin)
		}
		return nil, err
	}
	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.user = userFrom(res.User)
	a.brand = nil
	a.route = ports.RouteDashboard
	a.mu.Unlock()

	a.fetchBrand(ctx, gen)
	return res, nil
}

// Register crea la cuenta y adopta el usuario. No busca marca: una cuenta nueva no tiene.
func (a *AuthContext) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResult, error) {
	res, err := a.auth.Register(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrRoleMismatch) {
			a.drop(ports.RouteLogin)
		}
		return nil, err
	}
	a.mu.Lock()
	a.gen++
	a.user = userFrom(res.User)
	a.brand = nil
	a.route = ports.RouteRegisterBrand
	a.mu.Unlock()
	return res, nil
}

// Logout borra la sesión persistida y el estado en memoria.
func (a *AuthContext) Logout() error {
	err := a.auth.Logout()
	a.drop(ports.RouteLogin)
	return err
}

// RefreshBrand vuelve a consultar la marca (tras registrarla, por ejemplo).
func (a *AuthContext) RefreshBrand(ctx context.Context) {
	a.fetchBrand(ctx, a.generation())
}

// RedirectToLogin lo invoca el cliente HTTP ante un 401: el store ya está borrado,
// aquí se descarta el estado en memoria.
func (a *AuthContext) RedirectToLogin() {
	a.drop(ports.RouteLogin)
	a.log.Info().Msg("sesión revocada por el backend")
}

// Navigate registra la ruta actual.
func (a *AuthContext) Navigate(route string) {
	a.mu.Lock()
	a.route = route
	a.mu.Unlock()
}

func (a *AuthContext) drop(route string) {
	a.mu.Lock()
	a.gen++
	a.user, a.brand = nil, nil
	a.route = route
	a.mu.Unlock()
}

// Snapshot devuelve una copia del estado actual.
func (a *AuthContext) Snapshot() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return State{
		User:            copyUser(a.user),
		Brand:           copyBrand(a.brand),
		Loading:         a.loading,
		IsAuthenticated: a.user.IsVendor(),
		Route:           a.route,
	}
}

func userFrom(u dto.UserResponse) *entity.User {
	return &entity.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func copyBrand(b *entity.Brand) *entity.Brand {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
