package ports

import (
	"context"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
)

// AuthGateway define el puerto de salida hacia /auth. Devuelve credenciales
// TENTATIVAS: no toca la sesión; el caso de uso decide si se confirman.
type AuthGateway interface {
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
}

// BrandGateway define el puerto de salida hacia /brands.
type BrandGateway interface {
	// Register crea la marca vía multipart; logo puede ser nil.
	Register(ctx context.Context, in dto.RegisterBrandRequest, logo *dto.Attachment) (*dto.BrandResponse, error)
	// ListByOwner pide las marcas del owner indicado. Los backends que ignoran el
	// filtro devuelven la colección completa; el llamador filtra igualmente.
	ListByOwner(ctx context.Context, ownerID string) ([]dto.BrandResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error)
}

// ProductGateway define el puerto de salida hacia /products.
type ProductGateway interface {
	List(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error)
	Get(ctx context.Context, id string) (*dto.ProductResponse, error)
	// Create adjunta todas las imágenes recibidas bajo el campo "images"; no limita la cantidad.
	Create(ctx context.Context, in dto.CreateProductRequest, images []dto.Attachment) (*dto.ProductResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

// CategoryGateway define el puerto de salida hacia /categories (solo lectura).
type CategoryGateway interface {
	List(ctx context.Context) ([]dto.CategoryResponse, error)
}

// AnalyticsGateway fuente de los KPIs del dashboard.
type AnalyticsGateway interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}
