package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
	"github.com/jhoicas/vendor-portal/internal/domain"
)

// maxUploadBytes límite por archivo subido al BFF.
const maxUploadBytes = 10 << 20

// ProductHandler páginas de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        page      query     int     false  "página"
// @Param        limit     query     int     false  "tamaño de página"
// @Param        status    query     string  false  "estado"  Enums(active, draft, inactive)
// @Param        category  query     string  false  "ID de categoría"
// @Param        search    query     string  false  "texto a buscar"
// @Success      200       {object}  ProductPage
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      401       {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := dto.ProductQuery{
		Page:     c.QueryInt("page", 0),
		Limit:    c.QueryInt("limit", 0),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	out, err := h.uc.ListProducts(c.UserContext(), q)
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	return c.JSON(ProductPage{Items: portal.ProductRows(out.Items), Page: out.Page})
}

// GetByID godoc
// @Summary      Obtener producto
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}
	return c.JSON(p)
}

// Create godoc
// @Summary      Crear producto
// @Description  Las imágenes pasan por el selector: como máximo 5 y solo imágenes.
// @Description  Las descartadas se informan en "rejected". También se publica en /products/add.
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name            formData  string  true   "nombre"
// @Param        description     formData  string  true   "descripción"
// @Param        category        formData  string  true   "ID de categoría"
// @Param        price           formData  string  true   "precio decimal"
// @Param        inventory       formData  int     true   "unidades"
// @Param        compareAtPrice  formData  string  false  "precio de comparación"
// @Param        sku             formData  string  false  "SKU"
// @Param        status          formData  string  false  "estado"  Enums(active, draft, inactive)
// @Param        specifications  formData  string  false  "JSON"
// @Param        variants        formData  string  false  "JSON"
// @Param        images          formData  file    false  "imágenes"
// @Success      201  {object}  ProductCreateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badBody(c)
	}
	in, err := parseProductForm(form)
	if err != nil {
		return respondError(c, err, "")
	}
	files, err := readAttachments(form.File["images"])
	if err != nil {
		return respondError(c, err, "")
	}
	images, rejected := portal.ImagePicker.Pick(files)

	p, err := h.uc.CreateProduct(c.UserContext(), in, images)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(ProductCreateResponse{
		Product:  p,
		Rejected: rejected,
		Redirect: "/" + ports.RouteProducts,
	})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID del producto"
// @Param        body  body      dto.UpdateProductRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.UpdateProduct(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}
	return c.JSON(p)
}

// Delete godoc
// @Summary      Borrar producto
// @Description  El borrado es definitivo: sin confirm=true responde 428.
// @Tags         products
// @Produce      json
// @Param        id       path   string  true  "ID del producto"
// @Param        confirm  query  bool    true  "confirmación explícita"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if !c.QueryBool("confirm", false) {
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
			Code:    "CONFIRMATION_REQUIRED",
			Message: "Are you sure you want to delete this product?",
		})
	}
	if err := h.uc.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err, "Failed to delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseProductForm(form *multipart.Form) (dto.CreateProductRequest, error) {
	get := func(k string) string {
		if v := form.Value[k]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}
	in := dto.CreateProductRequest{
		Name:        get("name"),
		Description: get("description"),
		Category:    get("category"),
		SKU:         get("sku"),
		Status:      get("status"),
	}
	price, err := decimal.NewFromString(get("price"))
	if err != nil {
		return in, fmt.Errorf("%w: price inválido", domain.ErrInvalidInput)
	}
	in.Price = price
	if s := get("compareAtPrice"); s != "" {
		cmp, err := decimal.NewFromString(s)
		if err != nil {
			return in, fmt.Errorf("%w: compareAtPrice inválido", domain.ErrInvalidInput)
		}
		in.CompareAtPrice = &cmp
	}
	if in.Inventory, err = strconv.Atoi(get("inventory")); err != nil {
		return in, fmt.Errorf("%w: inventory inválido", domain.ErrInvalidInput)
	}
	if s := get("specifications"); s != "" {
		in.Specifications = []byte(s)
	}
	if s := get("variants"); s != "" {
		in.Variants = []byte(s)
	}
	return in, nil
}

// readAttachments lee los archivos subidos en memoria.
func readAttachments(headers []*multipart.FileHeader) ([]dto.Attachment, error) {
	out := make([]dto.Attachment, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > maxUploadBytes {
			return nil, fmt.Errorf("%w: %s supera el tamaño máximo", domain.ErrInvalidInput, fh.Filename)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("abrir %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", fh.Filename, err)
		}
		out = append(out, dto.Attachment{Filename: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Data: data})
	}
	return out, nil
}
