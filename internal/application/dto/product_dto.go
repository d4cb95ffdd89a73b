package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de producto que muestra el listado.
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusInactive = "inactive"
)

// ValidProductStatus indica si s es uno de los estados conocidos.
func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusActive, ProductStatusDraft, ProductStatusInactive:
		return true
	}
	return false
}

// CreateProductRequest campos del formulario "Add Product". Viaja como multipart
// junto con las imágenes; Specifications y Variants se envían como strings JSON.
type CreateProductRequest struct {
	Name           string
	Description    string
	Category       string // ID de categoría
	Price          decimal.Decimal
	CompareAtPrice *decimal.Decimal // opcional
	Inventory      int
	SKU            string // opcional
	Status         string // opcional; el backend asigna uno por defecto
	Specifications json.RawMessage
	Variants       json.RawMessage
}

// UpdateProductRequest PUT JSON parcial de un producto.
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	CompareAtPrice *decimal.Decimal `json:"compareAtPrice,omitempty"`
	Inventory      *int             `json:"inventory,omitempty"`
	SKU            *string          `json:"sku,omitempty"`
	Status         *string          `json:"status,omitempty"`
}

// ProductImage imagen ya subida.
type ProductImage struct {
	URL string `json:"url"`
}

// ProductResponse producto tal como lo devuelve /products.
type ProductResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Category       Ref              `json:"category"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compareAtPrice,omitempty"`
	Inventory      int              `json:"inventory"`
	SKU            string           `json:"sku,omitempty"`
	Images         []ProductImage   `json:"images"`
	Status         string           `json:"status"`
	Brand          Ref              `json:"brand"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// UnmarshalJSON completa ID desde "_id".
func (p *ProductResponse) UnmarshalJSON(b []byte) error {
	type alias ProductResponse
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	a.ID = idOf(b)
	*p = ProductResponse(a)
	return nil
}

// CategoryName nombre de la categoría poblada o "N/A".
func (p ProductResponse) CategoryName() string {
	if p.Category.Name == "" {
		return "N/A"
	}
	return p.Category.Name
}

// ProductQuery filtros de listado (query string de GET /products).
type ProductQuery struct {
	Page     int
	Limit    int
	Status   string
	Category string
	Search   string
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CategoryResponse categoría de referencia (solo lectura).
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON completa ID desde "_id".
func (c *CategoryResponse) UnmarshalJSON(b []byte) error {
	type alias CategoryResponse
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	a.ID = idOf(b)
	*c = CategoryResponse(a)
	return nil
}
