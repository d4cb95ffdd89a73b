package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación del vendor: registro, login y logout.
//
// Las credenciales que devuelve el gateway son tentativas. Solo se persisten
// si el usuario tiene rol vendor; en otro caso se descartan y se borra cualquier
// sesión previa.
type AuthUseCase struct {
	gateway ports.AuthGateway
	session repository.SessionRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway ports.AuthGateway, session repository.SessionRepository) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, session: session}
}

// Register crea una cuenta vendor. Si el backend devuelve otro rol retorna
// domain.ErrInvalidAccountType sin persistir nada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email y password son requeridos", domain.ErrInvalidInput)
	}
	resp, err := uc.gateway.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.commit(resp, domain.ErrInvalidAccountType)
}

// Login autentica y exige rol vendor. Un rol distinto retorna domain.ErrAccessDenied.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*dto.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email y password son requeridos", domain.ErrInvalidInput)
	}
	resp, err := uc.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return uc.commit(resp, domain.ErrAccessDenied)
}

// commit confirma o descarta credenciales tentativas según el rol.
func (uc *AuthUseCase) commit(resp *dto.AuthResponse, mismatch error) (*dto.AuthResult, error) {
	if resp == nil || resp.Token == "" {
		return nil, domain.ErrInvalidResponse
	}
	user := ToUser(resp.User)
	if !user.IsVendor() {
		if err := uc.session.Clear(); err != nil {
			return nil, fmt.Errorf("borrar sesión previa: %w", err)
		}
		return nil, mismatch
	}
	if err := uc.session.Save(resp.Token, *user); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return &dto.AuthResult{Token: resp.Token, User: resp.User}, nil
}

// Logout borra la sesión local. No hay llamada al backend.
func (uc *AuthUseCase) Logout() error {
	return uc.session.Clear()
}

// CurrentUser usuario cacheado o nil.
func (uc *AuthUseCase) CurrentUser() (*entity.User, error) {
	return uc.session.CurrentUser()
}

// IsAuthenticated indica si hay token guardado. No valida el rol ni la vigencia.
func (uc *AuthUseCase) IsAuthenticated() bool {
	return uc.session.HasToken()
}

// ToUser convierte el usuario del wire a la entidad.
func ToUser(u dto.UserResponse) *entity.User {
	return &entity.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
