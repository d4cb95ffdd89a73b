package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/api"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/session"
)

var vendor = entity.User{ID: "u1", Name: "Ayesha", Email: "vendor@x.com", Role: entity.RoleVendor}

func newClient(t *testing.T, h http.Handler) (*api.Client, *session.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	store := session.NewMemoryStore()
	c, err := api.NewClient(api.Config{BaseURL: srv.URL + "/api/"}, store, nil, nil)
	require.NoError(t, err)
	return c, store
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewClient_ValidaDependencias(t *testing.T) {
	_, err := api.NewClient(api.Config{}, session.NewMemoryStore(), nil, nil)
	assert.Error(t, err)

	_, err = api.NewClient(api.Config{BaseURL: "http://localhost"}, nil, nil, nil)
	assert.Error(t, err)
}

func TestClient_InyectaBearerToken(t *testing.T) {
	var auth, requestID atomic.Value
	c, store := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		requestID.Store(r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, `[]`)
	}))
	require.NoError(t, store.Save("t1", vendor))

	_, err := api.NewCategoryService(c).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer t1", auth.Load())
	assert.NotEmpty(t, requestID.Load())
}

func TestClient_SinToken_NoEnviaAuthorization(t *testing.T) {
	var auth atomic.Value
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `[]`)
	}))

	_, err := api.NewCategoryService(c).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", auth.Load())
}

func TestClient_401_BorraSesionYRedirige(t *testing.T) {
	reg := prometheus.NewRegistry()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Token expired"}`)
	}))
	defer srv.Close()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save("t1", vendor))
	c, err := api.NewClient(api.Config{BaseURL: srv.URL}, store, nil, metrics.NewGateway(reg))
	require.NoError(t, err)

	var redirects int32
	c.OnUnauthorized(ports.NavigatorFunc(func() { atomic.AddInt32(&redirects, 1) }))

	_, err = api.NewProductService(c).Get(context.Background(), "p1")
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.Equal(t, "Token expired", api.Message(err))
	assert.False(t, store.HasToken())
	u, _ := store.CurrentUser()
	assert.Nil(t, u)
	assert.Equal(t, int32(1), atomic.LoadInt32(&redirects))

	n, err := testutil.GatherAndCount(reg, "vendor_portal_session_forced_logouts_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClient_ErrorNo401_ConservaSesion(t *testing.T) {
	c, store := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"success":false,"error":{"message":"Price is required"}}`)
	}))
	require.NoError(t, store.Save("t1", vendor))

	_, err := api.NewProductService(c).Update(context.Background(), "p1", dto.UpdateProductRequest{})
	require.Error(t, err)

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Price is required", api.Message(err))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.True(t, store.HasToken(), "solo un 401 revoca la sesión")
}

func TestClient_ErrorSinCuerpo_UsaTextoDelStatus(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := api.NewProductService(c).Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, "Not Found", api.Message(err))
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAuthService_Register_FuerzaRolVendor(t *testing.T) {
	var got map[string]string
	c, store := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusCreated, `{"token":"t1","user":{"_id":"u1","name":"Ayesha","email":"vendor@x.com","role":"vendor"}}`)
	}))

	out, err := api.NewAuthService(c).Register(context.Background(), dto.RegisterRequest{
		Name: "Ayesha", Email: "vendor@x.com", Password: "secret1", Role: "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "vendor", got["role"])
	assert.Equal(t, "t1", out.Token)
	assert.Equal(t, "u1", out.User.ID, "acepta _id")
	assert.False(t, store.HasToken(), "el gateway no persiste credenciales")
}

func TestAuthService_Login_DesenvuelveData(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"success":true,"data":{"token":"t2","user":{"id":"u2","role":"customer"}}}`)
	}))

	out, err := api.NewAuthService(c).Login(context.Background(), "c@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t2", out.Token)
	assert.Equal(t, "customer", out.User.Role)
}

func TestBrandService_ListByOwner_EnviaFiltro(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.URL.Query().Get("owner"))
		writeJSON(w, http.StatusOK, `[{"_id":"b1","name":"Acme","status":"pending","owner":{"_id":"u1","name":"Ayesha"},"logo":{"url":"https://cdn/x.png"}}]`)
	}))

	brands, err := api.NewBrandService(c).ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "b1", brands[0].ID)
	assert.Equal(t, "u1", brands[0].Owner.ID)
	assert.Equal(t, "https://cdn/x.png", brands[0].LogoURL)
}

func TestBrandService_Register_Multipart(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Acme", r.FormValue("name"))

		var bi dto.BusinessInfoDTO
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("businessInfo")), &bi))
		assert.Equal(t, "Acme Pvt", bi.LegalName)
		assert.Contains(t, r.FormValue("bankDetails"), `"bankName":"HBL"`)
		assert.Empty(t, r.MultipartForm.Value["contactInfo"])

		logos := r.MultipartForm.File["logo"]
		require.Len(t, logos, 1)
		assert.Equal(t, "image/png", logos[0].Header.Get("Content-Type"))
		writeJSON(w, http.StatusCreated, `{"brand":{"_id":"b1"},"data":{"_id":"b1","name":"Acme","status":"pending"}}`)
	}))

	out, err := api.NewBrandService(c).Register(context.Background(), dto.RegisterBrandRequest{
		Name:         "Acme",
		Description:  "Shoes",
		BusinessInfo: dto.BusinessInfoDTO{LegalName: "Acme Pvt", TaxID: "T1", RegistrationNumber: "R1", BusinessType: "llc"},
		BankDetails:  dto.BankDetailsDTO{AccountName: "Acme", AccountNumber: "123", BankName: "HBL"},
	}, &dto.Attachment{Filename: "logo.png", ContentType: "image/png", Data: []byte("\x89PNG")})
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Status)
}

func TestProductService_Create_AdjuntaImagenes(t *testing.T) {
	for _, n := range []int{0, 2, 5} {
		t.Run(fmt.Sprintf("%d_imagenes", n), func(t *testing.T) {
			c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Len(t, r.MultipartForm.File["images"], n)
				assert.Equal(t, "1500", r.FormValue("price"))
				assert.Equal(t, "10", r.FormValue("inventory"))
				_, hasCompare := r.MultipartForm.Value["compareAtPrice"]
				assert.False(t, hasCompare, "compareAtPrice nil no se envía")
				writeJSON(w, http.StatusCreated, `{"_id":"p1","name":"Sneaker","price":1500}`)
			}))

			images := make([]dto.Attachment, n)
			for i := range images {
				images[i] = dto.Attachment{Filename: "img.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}
			}
			out, err := api.NewProductService(c).Create(context.Background(), dto.CreateProductRequest{
				Name: "Sneaker", Category: "c1", Price: decimal.NewFromInt(1500), Inventory: 10,
			}, images)
			require.NoError(t, err)
			assert.Equal(t, "p1", out.ID)
		})
	}
}

func TestProductService_List_FormatosDeRespuesta(t *testing.T) {
	cases := map[string]string{
		"arreglo": `[{"_id":"p1","category":{"_id":"c1","name":"Shoes"}},{"_id":"p2","category":"c2"}]`,
		"sobre":   `{"success":true,"data":[{"_id":"p1","category":{"_id":"c1","name":"Shoes"}},{"_id":"p2","category":"c2"}],"pagination":{"page":1,"limit":20,"total":2,"pages":1}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "active", r.URL.Query().Get("status"))
				writeJSON(w, http.StatusOK, body)
			}))

			out, err := api.NewProductService(c).List(context.Background(), dto.ProductQuery{Status: "active"})
			require.NoError(t, err)
			require.Len(t, out.Items, 2)
			assert.Equal(t, 2, out.Page.Total)
			assert.Equal(t, "Shoes", out.Items[0].CategoryName())
			assert.Equal(t, "N/A", out.Items[1].CategoryName())
			assert.Equal(t, "c2", out.Items[1].Category.ID)
		})
	}
}

func TestProductService_Delete(t *testing.T) {
	var method, path atomic.Value
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method.Store(r.Method)
		path.Store(r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, api.NewProductService(c).Delete(context.Background(), "p1"))
	assert.Equal(t, http.MethodDelete, method.Load())
	assert.Equal(t, "/api/products/p1", path.Load())
}

func TestMockAnalytics_PayloadFijo(t *testing.T) {
	stats, err := api.MockAnalytics{}.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 89, stats.TotalSales)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(245000)))
	assert.Equal(t, 23, stats.ActiveProducts)
	assert.InDelta(t, 4.6, stats.AverageRating, 0.001)
	assert.Equal(t, 12, stats.PendingOrders)
	require.Len(t, stats.MonthlySales, 4)
	assert.Equal(t, "Apr", stats.MonthlySales[3].Month)
}
