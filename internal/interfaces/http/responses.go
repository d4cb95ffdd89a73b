package http

import (
	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
)

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"vendor-portal"`
}

// SessionResponse estado de sesión visible para el front.
type SessionResponse struct {
	Authenticated bool              `json:"authenticated"`
	Loading       bool              `json:"loading"`
	User          *dto.UserResponse `json:"user,omitempty"`
	Redirect      string            `json:"redirect,omitempty" example:"/dashboard"`
}

func toSessionResponse(s portal.State, redirect string) SessionResponse {
	out := SessionResponse{Authenticated: s.IsAuthenticated, Loading: s.Loading, Redirect: redirect}
	if s.User != nil {
		out.User = &dto.UserResponse{ID: s.User.ID, Name: s.User.Name, Email: s.User.Email, Role: s.User.Role}
	}
	return out
}

// BrandView marca propia tal como la ve el front.
type BrandView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	LogoURL        string `json:"logoUrl,omitempty"`
	Status         string `json:"status" enums:"pending,approved,rejected"`
	RejectedReason string `json:"rejectedReason,omitempty"`
	CommissionRate string `json:"commissionRate" example:"10"`
}

func toBrandView(b *entity.Brand) BrandView {
	return BrandView{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		LogoURL:        b.LogoURL,
		Status:         b.Status,
		RejectedReason: b.RejectedReason,
		CommissionRate: b.CommissionRate.String(),
	}
}

// BrandSubmitResponse resultado del envío del asistente.
type BrandSubmitResponse struct {
	Brand    BrandView `json:"brand"`
	Redirect string    `json:"redirect" example:"/dashboard"`
}

// ProductPage página del listado de productos.
type ProductPage struct {
	Items []portal.ProductRow `json:"items"`
	Page  dto.PageResponse    `json:"page"`
}

// ProductCreateResponse producto creado más las imágenes que el selector descartó.
type ProductCreateResponse struct {
	Product  *dto.ProductResponse `json:"product"`
	Rejected []portal.Rejection   `json:"rejected"`
	Redirect string               `json:"redirect" example:"/products"`
}

// ComingSoonResponse página de menú sin implementar.
type ComingSoonResponse struct {
	Title   string `json:"title" example:"Orders"`
	Message string `json:"message" example:"Coming Soon"`
}
