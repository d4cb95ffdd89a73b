package cli

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/session"
)

// sessionView salida de login, register y whoami.
type sessionView struct {
	User      dto.UserResponse `json:"user" yaml:"user"`
	Next      string           `json:"next,omitempty" yaml:"next,omitempty"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	Expired   bool             `json:"expired,omitempty" yaml:"expired,omitempty"`
}

func (v sessionView) table() table {
	t := keyValues("Name", v.User.Name, "Email", v.User.Email, "Role", v.User.Role)
	if v.ExpiresAt != nil {
		exp := v.ExpiresAt.Format(time.RFC3339)
		if v.Expired {
			exp += " (expired)"
		}
		t.rows = append(t.rows, []string{"Expires:", exp})
	}
	if v.Next != "" {
		t.rows = append(t.rows, []string{"Next:", "vendorctl " + nextCommand(v.Next)})
	}
	return t
}

// nextCommand comando equivalente a la ruta a la que navega el portal.
func nextCommand(route string) string {
	if route == ports.RouteRegisterBrand {
		return "brand register"
	}
	return route
}

// field valor de un flag obligatorio y la etiqueta con la que se pide.
type field struct {
	label string
	value *string
}

// required pide por la entrada los valores que faltan.
func (a *App) required(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(*f.value) != "" {
			continue
		}
		ans, err := a.prompt(f.label)
		if err != nil {
			return err
		}
		if ans == "" {
			return usagef("%s es obligatorio", f.label)
		}
		*f.value = ans
	}
	return nil
}

func runLogin(ctx context.Context, a *App, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "correo de la cuenta vendor")
	password := fs.String("password", "", "contraseña (se pide si falta)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := a.required(field{"Email", email}, field{"Password", password}); err != nil {
		return err
	}
	res, err := a.deps.Auth.Login(ctx, strings.TrimSpace(*email), *password)
	if err != nil {
		return rejectedLogin(err)
	}
	v := sessionView{User: res.User, Next: ports.RouteDashboard}
	return a.render(v, v.table)
}

func runRegister(ctx context.Context, a *App, args []string) error {
	fs := a.flags("register")
	name := fs.String("name", "", "nombre del vendor")
	email := fs.String("email", "", "correo de la cuenta")
	password := fs.String("password", "", "contraseña (se pide si falta)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := a.required(field{"Name", name}, field{"Email", email}, field{"Password", password}); err != nil {
		return err
	}
	res, err := a.deps.Auth.Register(ctx, dto.RegisterRequest{
		Name:     strings.TrimSpace(*name),
		Email:    strings.TrimSpace(*email),
		Password: *password,
	})
	if err != nil {
		return rejectedLogin(err)
	}
	v := sessionView{User: res.User, Next: ports.RouteRegisterBrand}
	return a.render(v, v.table)
}

func runLogout(_ context.Context, a *App, args []string) error {
	if len(args) > 0 {
		return usagef("logout no recibe argumentos")
	}
	if err := a.deps.Auth.Logout(); err != nil {
		return err
	}
	a.deps.Log.Info().Msg("sesión cerrada")
	return nil
}

func runWhoami(_ context.Context, a *App, _ []string) error {
	u := a.deps.Auth.Snapshot().User
	v := sessionView{User: dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}}
	if a.deps.Session != nil {
		snap, err := session.Snapshot(a.deps.Session)
		if err != nil {
			return err
		}
		// Con un token opaco no hay expiración que mostrar.
		if !snap.ExpiresAt.IsZero() {
			v.ExpiresAt = &snap.ExpiresAt
			v.Expired = session.Expired(snap, time.Now())
		}
	}
	return a.render(v, v.table)
}
