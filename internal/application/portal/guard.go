package portal

// Decision resultado de evaluar la guarda de rutas protegidas.
type Decision int

const (
	// DecisionWait la sesión persistida aún se está resolviendo.
	DecisionWait Decision = iota
	// DecisionAllow hay un vendor autenticado.
	DecisionAllow
	// DecisionRedirect enviar a login.
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	}
	return "unknown"
}

// Evaluate decide el acceso a una ruta protegida. Mientras Loading, nunca redirige.
func Evaluate(s State) Decision {
	switch {
	case s.Loading:
		return DecisionWait
	case s.IsAuthenticated:
		return DecisionAllow
	default:
		return DecisionRedirect
	}
}
