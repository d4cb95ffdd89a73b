package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

var _ ports.CategoryGateway = (*CategoryService)(nil)

// CategoryService gateway de /categories (solo lectura).
type CategoryService struct {
	c *Client
}

// NewCategoryService construye el gateway.
func NewCategoryService(c *Client) *CategoryService {
	return &CategoryService{c: c}
}

// List GET /categories.
func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	if err := s.c.do(ctx, request{method: http.MethodGet, route: "/categories", path: "/categories"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
