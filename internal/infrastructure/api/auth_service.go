package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
)

var _ ports.AuthGateway = (*AuthService)(nil)

// AuthService gateway de /auth. No persiste nada: devuelve credenciales tentativas.
type AuthService struct {
	c *Client
}

// NewAuthService construye el gateway.
func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

// Register crea la cuenta forzando role=vendor en el cuerpo.
func (s *AuthService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	in.Role = entity.RoleVendor
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	var out dto.AuthResponse
	if err := s.c.do(ctx, request{method: http.MethodPost, route: "/auth/register", path: "/auth/register", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login autentica con email y password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	body, err := jsonBody(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	var out dto.AuthResponse
	if err := s.c.do(ctx, request{method: http.MethodPost, route: "/auth/login", path: "/auth/login", body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
