// Package cli implementa vendorctl: cada comando es una página del portal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	appanalytics "github.com/jhoicas/vendor-portal/internal/application/analytics"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/api"
	"github.com/jhoicas/vendor-portal/pkg/logger"
)

// Códigos de salida.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitNotLoggedIn = 2
	ExitUsage       = 64
)

// Mensajes de la guarda en el CLI.
const (
	msgNotLoggedIn    = "not logged in: run `vendorctl login`"
	msgSessionExpired = "session expired: run `vendorctl login`"
)

// Deps dependencias de los comandos.
type Deps struct {
	Auth       *portal.AuthContext
	Session    repository.SessionRepository
	Brands     *usecase.BrandUseCase
	Products   *usecase.ProductUseCase
	Categories *usecase.CategoryUseCase
	Dashboard  *appanalytics.DashboardUseCase
	Log        *logger.Logger
}

// App intérprete de comandos de vendorctl.
type App struct {
	deps   Deps
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	format string
}

// command página del portal. protected indica que pasa por la guarda.
type command struct {
	usage     string
	protected bool
	run       func(ctx context.Context, a *App, args []string) error
}

var commands = map[string]command{
	"login":      {"login --email E [--password P]", false, runLogin},
	"register":   {"register --name N --email E [--password P]", false, runRegister},
	"logout":     {"logout", false, runLogout},
	"whoami":     {"whoami", true, runWhoami},
	"brand":      {"brand show|register|update", true, runBrand},
	"products":   {"products list|get|add|update|delete", true, runProducts},
	"categories": {"categories", true, runCategories},
	"dashboard":  {"dashboard", true, runDashboard},
}

// New construye la aplicación. in se usa para las preguntas interactivas.
func New(deps Deps, in io.Reader, out, errOut io.Writer) *App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return &App{deps: deps, in: bufio.NewReader(in), out: out, errOut: errOut, format: formatTable}
}

// usageError error de uso: argumentos o flags inválidos.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// rejectedError un 401 del propio login o registro: son credenciales rechazadas,
// no una sesión vencida.
type rejectedError struct{ err error }

func (e *rejectedError) Error() string { return e.err.Error() }
func (e *rejectedError) Unwrap() error { return e.err }

// rejectedLogin envuelve en rejectedError un 401 devuelto por una llamada de autenticación.
func rejectedLogin(err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return &rejectedError{err: err}
	}
	return err
}

var (
	// errNotLoggedIn la guarda rechazó el comando.
	errNotLoggedIn = errors.New(msgNotLoggedIn)
	// errHelp se pidió -h en un subcomando; pflag ya imprimió la ayuda.
	errHelp = errors.New("ayuda")
)

// Run ejecuta args (sin el nombre del programa) y devuelve el código de salida.
func (a *App) Run(ctx context.Context, args []string) int {
	fs := pflag.NewFlagSet("vendorctl", pflag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.SetInterspersed(false)
	fs.StringVarP(&a.format, "output", "o", formatTable, "formato de salida: table, json o yaml")
	fs.Usage = func() { a.usage(fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if !validFormat(a.format) {
		fmt.Fprintf(a.errOut, "formato de salida inválido: %q\n", a.format)
		return ExitUsage
	}
	if fs.NArg() == 0 {
		a.usage(fs)
		return ExitUsage
	}

	name, rest := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(a.errOut, "comando desconocido: %s\n", name)
		a.usage(fs)
		return ExitUsage
	}

	if cmd.protected {
		if err := a.guard(ctx); err != nil {
			return a.fail(err)
		}
	}
	if err := cmd.run(ctx, a, rest); err != nil {
		return a.fail(err)
	}
	return ExitOK
}

// guard resuelve la sesión persistida y aplica la guarda de rutas.
func (a *App) guard(ctx context.Context) error {
	a.deps.Auth.Start(ctx)
	<-a.deps.Auth.Ready()
	if portal.Evaluate(a.deps.Auth.Snapshot()) != portal.DecisionAllow {
		return errNotLoggedIn
	}
	return nil
}

func (a *App) fail(err error) int {
	var (
		uerr *usageError
		rerr *rejectedError
	)
	switch {
	case errors.Is(err, errHelp):
		return ExitOK
	case errors.As(err, &rerr):
		fmt.Fprintln(a.errOut, "error:", api.Message(rerr.err))
		return ExitError
	case errors.Is(err, errNotLoggedIn):
		fmt.Fprintln(a.errOut, msgNotLoggedIn)
		return ExitNotLoggedIn
	case errors.Is(err, domain.ErrUnauthorized):
		fmt.Fprintln(a.errOut, msgSessionExpired)
		return ExitNotLoggedIn
	case errors.As(err, &uerr):
		fmt.Fprintln(a.errOut, uerr.msg)
		return ExitUsage
	}
	a.deps.Log.Debug().Err(err).Msg("comando fallido")
	fmt.Fprintln(a.errOut, "error:", api.Message(err))
	return ExitError
}

func (a *App) usage(fs *pflag.FlagSet) {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintln(a.errOut, "uso: vendorctl [-o table|json|yaml] <comando> [flags]")
	fmt.Fprintln(a.errOut, "\ncomandos:")
	for _, n := range names {
		fmt.Fprintf(a.errOut, "  %s\n", commands[n].usage)
	}
	fmt.Fprintln(a.errOut, "\nflags globales:")
	fmt.Fprint(a.errOut, fs.FlagUsages())
}

// flags crea el FlagSet de un subcomando con la salida de errores del App.
func (a *App) flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// parse analiza los flags de un subcomando y convierte el fallo en usageError.
func parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return errHelp
		}
		return usagef("%s: %v", fs.Name(), err)
	}
	return nil
}

// prompt pide un valor por la entrada. Sin entrada disponible devuelve "".
func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.errOut, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("leer entrada: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm pregunta s/n; solo "y" o "yes" confirman.
func (a *App) confirm(question string) (bool, error) {
	ans, err := a.prompt(question + " [y/N]")
	if err != nil {
		return false, err
	}
	ans = strings.ToLower(ans)
	return ans == "y" || ans == "yes", nil
}
