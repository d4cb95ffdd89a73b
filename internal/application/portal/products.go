package portal

import (
	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/pkg/money"
)

// ProductRow fila del listado de productos ya formateada.
type ProductRow struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Category  string `json:"category" yaml:"category"`
	Price     string `json:"price" yaml:"price"`
	Inventory int    `json:"inventory" yaml:"inventory"`
	Status    string `json:"status" yaml:"status"`
	Image     string `json:"image,omitempty" yaml:"image,omitempty"`
}

// ProductRows convierte productos del backend en filas del listado.
func ProductRows(items []dto.ProductResponse) []ProductRow {
	rows := make([]ProductRow, 0, len(items))
	for _, p := range items {
		row := ProductRow{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.CategoryName(),
			Price:     money.Format(p.Price),
			Inventory: p.Inventory,
			Status:    p.Status,
		}
		if len(p.Images) > 0 {
			row.Image = p.Images[0].URL
		}
		rows = append(rows, row)
	}
	return rows
}
