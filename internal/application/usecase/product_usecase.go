package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain"
)

// ProductUseCase casos de uso CRUD de productos del vendor.
type ProductUseCase struct {
	gateway ports.ProductGateway
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(gateway ports.ProductGateway) *ProductUseCase {
	return &ProductUseCase{gateway: gateway}
}

// ListProducts lista productos con filtros opcionales.
func (uc *ProductUseCase) ListProducts(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	if q.Page < 0 || q.Limit < 0 {
		return nil, fmt.Errorf("%w: page y limit no pueden ser negativos", domain.ErrInvalidInput)
	}
	if q.Status != "" && !dto.ValidProductStatus(q.Status) {
		return nil, statusError(q.Status)
	}
	return uc.gateway.List(ctx, q)
}

// GetProduct obtiene un producto por ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id de producto requerido", domain.ErrInvalidInput)
	}
	return uc.gateway.Get(ctx, id)
}

// CreateProduct valida los campos obligatorios del formulario y envía el multipart.
// La cantidad de imágenes no se limita aquí: el límite lo impone el selector.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest, images []dto.Attachment) (*dto.ProductResponse, error) {
	if missing := missingProductFields(in); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if in.Status != "" && !dto.ValidProductStatus(in.Status) {
		return nil, statusError(in.Status)
	}
	return uc.gateway.Create(ctx, in, images)
}

// UpdateProduct PUT parcial de un producto.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id de producto requerido", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Inventory != nil && *in.Inventory < 0 {
		return nil, fmt.Errorf("%w: inventory no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Status != nil && !dto.ValidProductStatus(*in.Status) {
		return nil, statusError(*in.Status)
	}
	return uc.gateway.Update(ctx, id, in)
}

// DeleteProduct borrado definitivo. La confirmación es responsabilidad de la interfaz.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id de producto requerido", domain.ErrInvalidInput)
	}
	return uc.gateway.Delete(ctx, id)
}

func missingProductFields(in dto.CreateProductRequest) []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if in.Price.IsNegative() {
		missing = append(missing, "price")
	}
	if in.Inventory < 0 {
		missing = append(missing, "inventory")
	}
	return missing
}

func statusError(s string) error {
	return fmt.Errorf("%w: status %q desconocido (%s, %s o %s)", domain.ErrInvalidInput, s,
		dto.ProductStatusActive, dto.ProductStatusDraft, dto.ProductStatusInactive)
}
