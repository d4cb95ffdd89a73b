package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
)

var _ ports.ProductGateway = (*ProductService)(nil)

// ProductService gateway de /products.
type ProductService struct {
	c *Client
}

// NewProductService construye el gateway.
func NewProductService(c *Client) *ProductService {
	return &ProductService{c: c}
}

// List GET /products. Acepta un arreglo plano, {data, pagination} o {products, ...}.
func (s *ProductService) List(ctx context.Context, q dto.ProductQuery) (*dto.ProductListResponse, error) {
	raw, err := s.c.send(ctx, request{method: http.MethodGet, route: "/products", path: "/products", query: productQuery(q)})
	if err != nil {
		return nil, err
	}
	root := gjson.ParseBytes(raw)
	items := root
	if !root.IsArray() {
		switch {
		case root.Get("data").IsArray():
			items = root.Get("data")
		case root.Get("products").IsArray():
			items = root.Get("products")
		default:
			return nil, fmt.Errorf("api: GET /products: formato de lista inesperado")
		}
	}
	out := &dto.ProductListResponse{Items: []dto.ProductResponse{}}
	if err := json.Unmarshal([]byte(items.Raw), &out.Items); err != nil {
		return nil, fmt.Errorf("api: deserializar productos: %w", err)
	}

	meta := root.Get("pagination")
	if !meta.Exists() {
		meta = root
	}
	out.Page = dto.PageResponse{
		Page:  int(meta.Get("page").Int()),
		Limit: int(meta.Get("limit").Int()),
		Total: int(meta.Get("total").Int()),
		Pages: int(meta.Get("pages").Int()),
	}
	if out.Page.Total == 0 {
		out.Page.Total = len(out.Items)
	}
	return out, nil
}

func productQuery(q dto.ProductQuery) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Get GET /products/:id.
func (s *ProductService) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	r := request{method: http.MethodGet, route: "/products/:id", path: "/products/" + escape(id)}
	if err := s.c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create POST /products como multipart. Cada imagen va bajo el campo repetido "images".
func (s *ProductService) Create(ctx context.Context, in dto.CreateProductRequest, images []dto.Attachment) (*dto.ProductResponse, error) {
	f := newForm()
	f.field("name", in.Name)
	f.field("description", in.Description)
	f.field("category", in.Category)
	f.field("price", in.Price.String())
	if in.CompareAtPrice != nil {
		f.field("compareAtPrice", in.CompareAtPrice.String())
	}
	f.field("inventory", strconv.Itoa(in.Inventory))
	if in.SKU != "" {
		f.field("sku", in.SKU)
	}
	if in.Status != "" {
		f.field("status", in.Status)
	}
	f.rawJSONField("specifications", in.Specifications)
	f.rawJSONField("variants", in.Variants)
	for _, img := range images {
		f.file("images", img)
	}
	body, contentType, err := f.finish()
	if err != nil {
		return nil, err
	}
	var out dto.ProductResponse
	r := request{method: http.MethodPost, route: "/products", path: "/products", body: body, contentType: contentType}
	if err := s.c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update PUT /products/:id con JSON plano.
func (s *ProductService) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	var out dto.ProductResponse
	r := request{method: http.MethodPut, route: "/products/:id", path: "/products/" + escape(id), body: body}
	if err := s.c.do(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE /products/:id. Borrado definitivo.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	r := request{method: http.MethodDelete, route: "/products/:id", path: "/products/" + escape(id)}
	return s.c.do(ctx, r, nil)
}
