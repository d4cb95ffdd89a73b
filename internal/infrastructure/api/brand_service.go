package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

var _ ports.BrandGateway = (*BrandService)(nil)

// BrandService gateway de /brands.
type BrandService struct {
	c *Client
}

// NewBrandService construye el gateway.
func NewBrandService(c *Client) *BrandService {
	return &BrandService{c: c}
}

// Register envía POST /brands como multipart: campos planos como texto, objetos
// anidados como strings JSON y el logo como parte binaria "logo".
func (s *BrandService) Register(ctx context.Context, in dto.RegisterBrandRequest, logo *dto.Attachment) (*dto.BrandResponse, error) {
	f := newForm()
	f.field("name", in.Name)
	f.field("description", in.Description)
	f.jsonField("businessInfo", in.BusinessInfo)
	f.jsonField("bankDetails", in.BankDetails)
	if in.ContactInfo != nil {
		f.jsonField("contactInfo", in.ContactInfo)
	}
	if logo != nil {
		f.file("logo", *logo)
	}
	body, contentType, err := f.finish()
	if err != nil {
		return nil, err
	}
	var out dto.BrandResponse
	r := request{method: http.MethodPost, route: "/brands", path: "/brands", body: body, contentType: contentType}
	if err := s.c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByOwner GET /brands?owner=<id>. El parámetro owner es el contrato que debe
// soportar el backend; mientras tanto puede devolver todas las marcas.
func (s *BrandService) ListByOwner(ctx context.Context, ownerID string) ([]dto.BrandResponse, error) {
	q := url.Values{}
	if ownerID != "" {
		q.Set("owner", ownerID)
	}
	var out []dto.BrandResponse
	if err := s.c.do(ctx, request{method: http.MethodGet, route: "/brands", path: "/brands", query: q}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update PUT /brands/:id con JSON plano.
func (s *BrandService) Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	var out dto.BrandResponse
	r := request{method: http.MethodPut, route: "/brands/:id", path: "/brands/" + escape(id), body: body}
	if err := s.c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
