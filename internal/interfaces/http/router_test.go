package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	apphttp "github.com/jhoicas/vendor-portal/internal/interfaces/http"
)

// testContext stands in for testing.T.Context (Go 1.24+): a context cancelled
// when the test finishes.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

var pngData = []byte("\x89PNG\r\n\x1a\n0000")

func approvedBrand() dto.BrandResponse {
	return dto.BrandResponse{ID: "b1", Name: "Acme", Status: entity.BrandStatusApproved, Owner: dto.Ref{ID: "u1"}}
}

func TestHealth(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	resp := tp.do(t, http.MethodGet, "/health", nil, "")
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestMetrics_ExponeRegistro(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	resp := tp.do(t, http.MethodGet, "/metrics", nil, "")
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestLogin_Vendor_NavegaAlDashboard(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.ctx.Start(testContext(t))
	tp.brands.Items = []dto.BrandResponse{approvedBrand()}

	resp := tp.doJSON(t, http.MethodPost, "/login", dto.LoginRequest{Email: "a@x.com", Password: "pw"})
	var body struct {
		Authenticated bool   `json:"authenticated"`
		Redirect      string `json:"redirect"`
	}
	decode(t, resp, &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Authenticated)
	assert.Equal(t, "/dashboard", body.Redirect)
	assert.True(t, tp.store.HasToken())
	require.NotNil(t, tp.ctx.Snapshot().Brand)
}

func TestLogin_Cliente_Retorna403ConMensaje(t *testing.T) {
	tp := buildTestApp(t, entity.RoleCustomer)
	tp.ctx.Start(testContext(t))

	resp := tp.doJSON(t, http.MethodPost, "/login", dto.LoginRequest{Email: "c@x.com", Password: "pw"})
	var body dto.ErrorResponse
	decode(t, resp, &body)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied. Vendor account required.", body.Message)
	assert.False(t, tp.store.HasToken())
}

func TestLogin_CamposVacios_Retorna400(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	resp := tp.doJSON(t, http.MethodPost, "/login", dto.LoginRequest{Email: "a@x.com"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, tp.auth.Calls)
}

func TestRegister_NavegaAlRegistroDeMarca(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.ctx.Start(testContext(t))

	resp := tp.doJSON(t, http.MethodPost, "/register", dto.RegisterRequest{Name: "Ayesha", Email: "a@x.com", Password: "pw"})
	var body map[string]any
	decode(t, resp, &body)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/register-brand", body["redirect"])
	assert.Equal(t, "vendor", tp.auth.Last.Role)
}

func TestLogout_BorraSesion(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t)

	resp := tp.doJSON(t, http.MethodPost, "/logout", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, tp.store.HasToken())

	resp = tp.do(t, http.MethodGet, "/dashboard", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboard_Ramas(t *testing.T) {
	cases := []struct {
		name    string
		brands  []dto.BrandResponse
		message string
	}{
		{"sin marca", nil, portal.MsgNoBrand},
		{"pendiente", []dto.BrandResponse{{ID: "b1", Status: "pending", Owner: dto.Ref{ID: "u1"}}}, portal.MsgBrandPending},
		{"rechazada", []dto.BrandResponse{{ID: "b1", Status: "rejected", Owner: dto.Ref{ID: "u1"}}},
			"Your brand application was rejected. Reason: Not specified"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tp := buildTestApp(t, entity.RoleVendor)
			tp.loggedIn(t, tc.brands...)

			resp := tp.do(t, http.MethodGet, "/dashboard", nil, "")
			var d portal.Dashboard
			decode(t, resp, &d)

			require.NotNil(t, d.Notice)
			assert.Equal(t, tc.message, d.Notice.Message)
		})
	}
}

func TestDashboard_Aprobada_MuestraStats(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t, approvedBrand())

	resp := tp.do(t, http.MethodGet, "/dashboard", nil, "")
	var d portal.Dashboard
	decode(t, resp, &d)

	assert.Nil(t, d.Notice)
	require.Len(t, d.Stats, 5)
	assert.Equal(t, "Rs. 245,000", d.Stats[1].Value)
	assert.Len(t, d.MonthlySales, 4)
}

func TestWizard_FlujoCompleto(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t)

	resp := tp.doJSON(t, http.MethodPost, "/register-brand/back", nil)
	var v portal.WizardView
	decode(t, resp, &v)
	assert.Equal(t, 0, v.Step, "Back en el primer paso no hace nada")

	resp = tp.doJSON(t, http.MethodPatch, "/register-brand", map[string]string{
		"legalName": "Acme Pvt", "taxId": "T-1", "registrationNumber": "R-1", "businessType": "llc",
		"accountName": "Acme", "accountNumber": "0001", "bankName": "HBL",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for i := 0; i < 3; i++ {
		resp = tp.doJSON(t, http.MethodPost, "/register-brand/next", nil)
		decode(t, resp, &v)
	}
	assert.Equal(t, 2, v.Step, "Next se detiene en el último paso")
	assert.Equal(t, "Bank Information", v.Label)

	body, ct := multipartBody(t,
		map[string]string{"name": "Acme", "description": "Shoes"},
		map[string][][]byte{"logo": {pngData}},
	)
	tp.brands.Items = []dto.BrandResponse{{ID: "b-new", Status: "pending", Owner: dto.Ref{ID: "u1"}}}
	resp = tp.do(t, http.MethodPost, "/register-brand/submit", body, ct)
	var out map[string]any
	decode(t, resp, &out)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/dashboard", out["redirect"])
	require.Len(t, tp.brands.Created, 1)
	assert.Equal(t, "Acme Pvt", tp.brands.Created[0].BusinessInfo.LegalName)
	require.NotNil(t, tp.brands.Logos[0])
	assert.Equal(t, "image/png", tp.brands.Logos[0].ContentType)
	require.NotNil(t, tp.ctx.Snapshot().Brand, "la marca se refresca tras el registro")
}

func TestWizard_SubmitIncompleto_Retorna400(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t)
	for i := 0; i < 2; i++ {
		resp := tp.doJSON(t, http.MethodPost, "/register-brand/next", nil)
		resp.Body.Close()
	}

	resp := tp.doJSON(t, http.MethodPost, "/register-brand/submit", nil)
	var body dto.ErrorResponse
	decode(t, resp, &body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WIZARD_INCOMPLETE", body.Code)
	assert.Empty(t, tp.brands.Created)
}

func TestProducts_ListaFormateada(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t, approvedBrand())

	resp := tp.do(t, http.MethodGet, "/products?status=active&page=2", nil, "")
	var body struct {
		Items []portal.ProductRow `json:"items"`
	}
	decode(t, resp, &body)

	require.Len(t, body.Items, 1)
	assert.Equal(t, "Rs. 1,234", body.Items[0].Price)
	assert.Equal(t, "Shoes", body.Items[0].Category)
	assert.Equal(t, "active", tp.products.Query.Status)
	assert.Equal(t, 2, tp.products.Query.Page)
}

func TestProducts_Create_SelectorLimitaACinco(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t, approvedBrand())

	images := make([][]byte, 6)
	for i := range images {
		images[i] = pngData
	}
	body, ct := multipartBody(t, map[string]string{
		"name": "Cap", "description": "Wool cap", "category": "c1", "price": "499.99", "inventory": "7",
	}, map[string][][]byte{"images": images})

	resp := tp.do(t, http.MethodPost, "/products", body, ct)
	var out struct {
		Product  dto.ProductResponse `json:"product"`
		Rejected []portal.Rejection  `json:"rejected"`
	}
	decode(t, resp, &out)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, tp.products.Images, 1)
	assert.Len(t, tp.products.Images[0], 5)
	assert.Len(t, out.Rejected, 1)
	assert.Equal(t, "Cap", out.Product.Name)
}

func TestProducts_Create_PrecioInvalido_Retorna400(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t, approvedBrand())

	body, ct := multipartBody(t, map[string]string{"name": "Cap", "price": "abc", "inventory": "1"}, nil)
	resp := tp.do(t, http.MethodPost, "/products", body, ct)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProducts_Delete_RequiereConfirmacion(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t, approvedBrand())

	resp := tp.do(t, http.MethodDelete, "/products/p1", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Empty(t, tp.products.Deleted)

	resp = tp.do(t, http.MethodDelete, "/products/p1?confirm=true", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []string{"p1"}, tp.products.Deleted)
}

func TestProducts_GetInexistente_Retorna404(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t, approvedBrand())

	resp := tp.do(t, http.MethodGet, "/products/nope", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategories(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t)

	resp := tp.do(t, http.MethodGet, "/categories", nil, "")
	var out []dto.CategoryResponse
	decode(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Shoes", out[0].Name)
}

func TestRutaDesconocida_RedirigeAlDashboard(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t)

	for _, path := range []string{"/", "/whatever"} {
		resp := tp.do(t, http.MethodGet, path, nil, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"), path)
	}
}

func TestMenu_ComingSoon(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t)

	for path, title := range map[string]string{"/orders": "Orders", "/analytics": "Analytics", "/store": "Store Settings"} {
		resp := tp.do(t, http.MethodGet, path, nil, "")
		var out map[string]string
		decode(t, resp, &out)
		assert.Equal(t, title, out["title"], path)
		assert.Equal(t, "Coming Soon", out["message"], path)
	}
}

func TestDocs_SirveSwaggerUI(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{AppName: "vendor-portal-test", SwaggerFile: "../../../docs/swagger.json"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Vendor Portal BFF")
}

func TestDocs_SinArchivo_NoSeMonta(t *testing.T) {
	tp := buildTestApp(t, entity.RoleVendor)
	tp.loggedIn(t)

	resp := tp.do(t, http.MethodGet, "/docs", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}
