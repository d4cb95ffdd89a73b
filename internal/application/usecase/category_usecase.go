package usecase

import (
	"context"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

// CategoryUseCase catálogo de categorías (solo lectura).
type CategoryUseCase struct {
	gateway ports.CategoryGateway
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(gateway ports.CategoryGateway) *CategoryUseCase {
	return &CategoryUseCase{gateway: gateway}
}

// ListCategories devuelve todas las categorías; nunca nil.
func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	out, err := uc.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []dto.CategoryResponse{}
	}
	return out, nil
}
