package ports

// Rutas del portal usadas para navegación programática.
const (
	RouteLogin         = "login"
	RouteDashboard     = "dashboard"
	RouteRegisterBrand = "register-brand"
	RouteProducts      = "products"
)

// Navigator recibe la redirección global a login que dispara un 401.
// El BFF la implementa con AuthContext; el CLI imprime un aviso.
type Navigator interface {
	RedirectToLogin()
}

// NavigatorFunc adapta una función a Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) RedirectToLogin() { f() }
