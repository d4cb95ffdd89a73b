// Package portstest provee implementaciones en memoria de los puertos de salida
// para tests de casos de uso, del contexto de auth y del BFF.
package portstest

import (
	"context"
	"sync"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

var (
	_ ports.AuthGateway      = (*Auth)(nil)
	_ ports.BrandGateway     = (*Brands)(nil)
	_ ports.ProductGateway   = (*Products)(nil)
	_ ports.CategoryGateway  = (*Categories)(nil)
	_ ports.AnalyticsGateway = (*Analytics)(nil)
)

// Auth gateway de auth con respuesta fija. Calls registra el orden de llamadas.
type Auth struct {
	Resp *dto.AuthResponse
	Err  error

	mu    sync.Mutex
	Calls []string
	Last  dto.RegisterRequest
}

func (f *Auth) Register(_ context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "register")
	f.Last = in
	return f.Resp, f.Err
}

func (f *Auth) Login(context.Context, string, string) (*dto.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, "login")
	return f.Resp, f.Err
}

// Brands gateway de marcas en memoria. ListByOwner ignora el filtro, como los
// backends que todavía no lo soportan.
type Brands struct {
	mu        sync.Mutex
	Items     []dto.BrandResponse
	ListErr   error
	CreateErr error
	Owners    []string
	Created   []dto.RegisterBrandRequest
	Logos     []*dto.Attachment
	OnList    func()
}

func (f *Brands) Register(_ context.Context, in dto.RegisterBrandRequest, logo *dto.Attachment) (*dto.BrandResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.Created = append(f.Created, in)
	f.Logos = append(f.Logos, logo)
	b := dto.BrandResponse{ID: "b-new", Name: in.Name, Description: in.Description, Status: "pending"}
	return &b, nil
}

func (f *Brands) ListByOwner(_ context.Context, ownerID string) ([]dto.BrandResponse, error) {
	f.mu.Lock()
	f.Owners = append(f.Owners, ownerID)
	items, err, hook := append([]dto.BrandResponse(nil), f.Items...), f.ListErr, f.OnList
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return items, err
}

func (f *Brands) Update(_ context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Items {
		if f.Items[i].ID != id {
			continue
		}
		if in.Name != nil {
			f.Items[i].Name = *in.Name
		}
		if in.Description != nil {
			f.Items[i].Description = *in.Description
		}
		b := f.Items[i]
		return &b, nil
	}
	return nil, ErrNotFound
}

// Products gateway de productos en memoria.
type Products struct {
	mu      sync.Mutex
	Items   []dto.ProductResponse
	Err     error
	Images  [][]dto.Attachment
	Deleted []string
	Query   dto.ProductQuery
}

func (f *Products) List(_ context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Query = q
	if f.Err != nil {
		return nil, f.Err
	}
	items := append([]dto.ProductResponse{}, f.Items...)
	return &dto.ProductListResponse{Items: items, Page: dto.PageResponse{Page: 1, Limit: len(items), Total: len(items), Pages: 1}}, nil
}

func (f *Products) Get(_ context.Context, id string) (*dto.ProductResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for _, p := range f.Items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *Products) Create(_ context.Context, in dto.CreateProductRequest, images []dto.Attachment) (*dto.ProductResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.Images = append(f.Images, images)
	p := dto.ProductResponse{
		ID:          "p-new",
		Name:        in.Name,
		Description: in.Description,
		Category:    dto.Ref{ID: in.Category},
		Price:       in.Price,
		Inventory:   in.Inventory,
		SKU:         in.SKU,
		Status:      in.Status,
	}
	for range images {
		p.Images = append(p.Images, dto.ProductImage{URL: "https://cdn.example/img"})
	}
	f.Items = append(f.Items, p)
	return &p, nil
}

func (f *Products) Update(_ context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	for i := range f.Items {
		if f.Items[i].ID != id {
			continue
		}
		p := &f.Items[i]
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Inventory != nil {
			p.Inventory = *in.Inventory
		}
		if in.Status != nil {
			p.Status = *in.Status
		}
		out := *p
		return &out, nil
	}
	return nil, ErrNotFound
}

func (f *Products) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Items {
		if f.Items[i].ID == id {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			f.Deleted = append(f.Deleted, id)
			return nil
		}
	}
	return ErrNotFound
}

// Categories gateway de categorías con lista fija.
type Categories struct {
	Items []dto.CategoryResponse
	Err   error
}

func (f *Categories) List(context.Context) ([]dto.CategoryResponse, error) {
	return f.Items, f.Err
}

// Analytics gateway de KPIs con respuesta fija.
type Analytics struct {
	Stats *dto.DashboardStatsDTO
	Err   error
}

func (f *Analytics) DashboardStats(context.Context) (*dto.DashboardStatsDTO, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	s := *f.Stats
	return &s, nil
}
