package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/pkg/money"
)

func runProducts(ctx context.Context, a *App, args []string) error {
	if len(args) == 0 {
		return usagef("uso: vendorctl products list|get|add|update|delete")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return productsList(ctx, a, rest)
	case "get":
		return productsGet(ctx, a, rest)
	case "add":
		return productsAdd(ctx, a, rest)
	case "update":
		return productsUpdate(ctx, a, rest)
	case "delete":
		return productsDelete(ctx, a, rest)
	}
	return usagef("subcomando de products desconocido: %s", sub)
}

// productList salida de products list.
type productList struct {
	Items []portal.ProductRow `json:"items" yaml:"items"`
	Page  dto.PageResponse    `json:"page" yaml:"page"`
}

func (l productList) table() table {
	t := table{header: []string{"ID", "NAME", "CATEGORY", "PRICE", "INVENTORY", "STATUS"}}
	for _, r := range l.Items {
		t.rows = append(t.rows, []string{r.ID, r.Name, r.Category, r.Price, strconv.Itoa(r.Inventory), r.Status})
	}
	return t
}

func productsList(ctx context.Context, a *App, args []string) error {
	fs := a.flags("products list")
	var q dto.ProductQuery
	fs.IntVar(&q.Page, "page", 0, "página")
	fs.IntVar(&q.Limit, "limit", 0, "productos por página")
	fs.StringVar(&q.Status, "status", "", "filtrar por estado: active, draft o inactive")
	fs.StringVar(&q.Category, "category", "", "filtrar por categoría")
	fs.StringVarP(&q.Search, "search", "s", "", "buscar por nombre")
	if err := parse(fs, args); err != nil {
		return err
	}
	res, err := a.deps.Products.ListProducts(ctx, q)
	if err != nil {
		return err
	}
	l := productList{Items: portal.ProductRows(res.Items), Page: res.Page}
	if len(l.Items) == 0 && a.format == formatTable {
		fmt.Fprintln(a.errOut, "No products yet: run `vendorctl products add`")
		return nil
	}
	return a.render(l, l.table)
}

// productView detalle de un producto.
type productView struct {
	dto.ProductResponse `yaml:",inline"`
}

func (v productView) table() table {
	images := make([]string, 0, len(v.Images))
	for _, img := range v.Images {
		images = append(images, img.URL)
	}
	t := keyValues(
		"ID", v.ID,
		"Name", v.Name,
		"Category", v.CategoryName(),
		"Price", money.Format(v.Price),
		"Inventory", strconv.Itoa(v.Inventory),
		"Status", v.Status,
	)
	if v.CompareAtPrice != nil {
		t.rows = append(t.rows, []string{"Compare at:", money.Format(*v.CompareAtPrice)})
	}
	if v.SKU != "" {
		t.rows = append(t.rows, []string{"SKU:", v.SKU})
	}
	if len(images) > 0 {
		t.rows = append(t.rows, []string{"Images:", strings.Join(images, ", ")})
	}
	return t
}

func oneID(fs *pflag.FlagSet, args []string) (string, error) {
	if err := parse(fs, args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", usagef("%s: indica el id del producto", fs.Name())
	}
	return fs.Arg(0), nil
}

func productsGet(ctx context.Context, a *App, args []string) error {
	id, err := oneID(a.flags("products get"), args)
	if err != nil {
		return err
	}
	p, err := a.deps.Products.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	v := productView{*p}
	return a.render(v, v.table)
}

// productFlags flags compartidos por add y update.
type productFlags struct {
	name, description, category, price, compareAt, sku, status string
	inventory                                                   int
}

func (p *productFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&p.name, "name", "", "nombre")
	fs.StringVar(&p.description, "description", "", "descripción")
	fs.StringVar(&p.category, "category", "", "id de categoría")
	fs.StringVar(&p.price, "price", "", "precio")
	fs.StringVar(&p.compareAt, "compare-at-price", "", "precio de comparación")
	fs.IntVar(&p.inventory, "inventory", 0, "unidades en inventario")
	fs.StringVar(&p.sku, "sku", "", "SKU")
	fs.StringVar(&p.status, "status", "", "estado: active, draft o inactive")
}

func parseDecimal(flag, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, usagef("--%s inválido: %q", flag, s)
	}
	return d, nil
}

func productsAdd(ctx context.Context, a *App, args []string) error {
	fs := a.flags("products add")
	var pf productFlags
	pf.bind(fs)
	images := fs.StringArray("image", nil, "ruta de una imagen; se puede repetir (máx. 5)")
	specs := fs.String("specifications", "", "especificaciones como JSON")
	variants := fs.String("variants", "", "variantes como JSON")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := a.required(field{"Name", &pf.name}, field{"Description", &pf.description}, field{"Category", &pf.category}, field{"Price", &pf.price}); err != nil {
		return err
	}
	price, err := parseDecimal("price", pf.price)
	if err != nil {
		return err
	}
	in := dto.CreateProductRequest{
		Name:        strings.TrimSpace(pf.name),
		Description: pf.description,
		Category:    strings.TrimSpace(pf.category),
		Price:       price,
		Inventory:   pf.inventory,
		SKU:         pf.sku,
		Status:      pf.status,
	}
	if pf.compareAt != "" {
		cmp, err := parseDecimal("compare-at-price", pf.compareAt)
		if err != nil {
			return err
		}
		in.CompareAtPrice = &cmp
	}
	for flag, raw := range map[string]string{"specifications": *specs, "variants": *variants} {
		if raw == "" {
			continue
		}
		if !json.Valid([]byte(raw)) {
			return usagef("--%s debe ser JSON válido", flag)
		}
	}
	if *specs != "" {
		in.Specifications = json.RawMessage(*specs)
	}
	if *variants != "" {
		in.Variants = json.RawMessage(*variants)
	}

	files, err := portal.LoadFiles(*images)
	if err != nil {
		return err
	}
	accepted, rejected := portal.ImagePicker.Pick(files)
	a.reportRejected(rejected)

	p, err := a.deps.Products.CreateProduct(ctx, in, accepted)
	if err != nil {
		return err
	}
	a.deps.Log.Info().Str("product_id", p.ID).Int("images", len(accepted)).Msg("producto creado")
	v := productView{*p}
	return a.render(v, v.table)
}

// productsUpdate PUT parcial con los flags indicados.
func productsUpdate(ctx context.Context, a *App, args []string) error {
	fs := a.flags("products update")
	var pf productFlags
	pf.bind(fs)
	id, err := oneID(fs, args)
	if err != nil {
		return err
	}
	var in dto.UpdateProductRequest
	changed := false
	set := func(flag string, apply func()) {
		if fs.Changed(flag) {
			apply()
			changed = true
		}
	}
	set("name", func() { in.Name = &pf.name })
	set("description", func() { in.Description = &pf.description })
	set("category", func() { in.Category = &pf.category })
	set("inventory", func() { in.Inventory = &pf.inventory })
	set("sku", func() { in.SKU = &pf.sku })
	set("status", func() { in.Status = &pf.status })
	if fs.Changed("price") {
		d, err := parseDecimal("price", pf.price)
		if err != nil {
			return err
		}
		in.Price, changed = &d, true
	}
	if fs.Changed("compare-at-price") {
		d, err := parseDecimal("compare-at-price", pf.compareAt)
		if err != nil {
			return err
		}
		in.CompareAtPrice, changed = &d, true
	}
	if !changed {
		return usagef("products update: no hay cambios")
	}
	p, err := a.deps.Products.UpdateProduct(ctx, id, in)
	if err != nil {
		return err
	}
	v := productView{*p}
	return a.render(v, v.table)
}

func productsDelete(ctx context.Context, a *App, args []string) error {
	fs := a.flags("products delete")
	yes := fs.BoolP("yes", "y", false, "no pedir confirmación")
	id, err := oneID(fs, args)
	if err != nil {
		return err
	}
	if !*yes {
		ok, err := a.confirm(fmt.Sprintf("Are you sure you want to delete product %s?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.errOut, "cancelado")
			return nil
		}
	}
	if err := a.deps.Products.DeleteProduct(ctx, id); err != nil {
		return err
	}
	a.deps.Log.Info().Str("product_id", id).Msg("producto eliminado")
	fmt.Fprintf(a.errOut, "producto %s eliminado\n", id)
	return nil
}
