// Package api implementa los gateways REST del backend del marketplace.
//
// Client es el único punto de salida HTTP: inyecta el bearer token de la sesión,
// y ante cualquier 401 borra la sesión y redirige a login antes de devolver el error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
	"github.com/jhoicas/vendor-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/vendor-portal/pkg/logger"
)

const maxResponseBytes = 10 << 20 // 10 MB

// Config configuración del cliente.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RateLimit  float64 // peticiones por segundo; 0 = sin límite
	HTTPClient *http.Client
}

// Client cliente HTTP hacia el backend con sesión inyectada.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    repository.SessionRepository
	limiter    *rate.Limiter
	metrics    *metrics.Gateway
	log        *logger.Logger

	mu         sync.RWMutex
	navigators []ports.Navigator
}

// NewClient construye el cliente. m puede ser nil.
func NewClient(cfg Config, session repository.SessionRepository, log *logger.Logger, m *metrics.Gateway) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL es requerido")
	}
	if session == nil {
		return nil, fmt.Errorf("api: session es requerido")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("api: BaseURL inválido: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		session:    session,
		metrics:    m,
		log:        log.Named("api"),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c, nil
}

// OnUnauthorized registra quién recibe la redirección a login tras un 401.
func (c *Client) OnUnauthorized(n ports.Navigator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigators = append(c.navigators, n)
}

// request describe una petición. route es la plantilla (/products/:id) usada como
// etiqueta de métricas; path es la ruta concreta.
type request struct {
	method      string
	route       string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// do ejecuta la petición y decodifica la respuesta 2xx en out (si no es nil),
// desenvolviendo el sobre {"data": ...} cuando existe.
func (c *Client) do(ctx context.Context, r request, out any) error {
	body, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(unwrapData(body), out); err != nil {
		return fmt.Errorf("api: deserializar respuesta %s %s: %w", r.method, r.route, err)
	}
	return nil
}

// send ejecuta la petición y devuelve el cuerpo crudo de una respuesta 2xx.
func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("api: rate limit: %w", err)
		}
	}

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, fmt.Errorf("api: crear request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	} else if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe(r.method, r.route, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: timeout o cancelación %s %s: %w", r.method, r.route, ctx.Err())
		}
		return nil, fmt.Errorf("api: llamada HTTP fallida %s %s: %w", r.method, r.route, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	elapsed := time.Since(start)
	c.metrics.Observe(r.method, r.route, resp.StatusCode, elapsed)
	c.log.Debug().
		Str("request_id", requestID).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("backend")
	if err != nil {
		return nil, fmt.Errorf("api: leer respuesta: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.forceLogout(requestID, r)
		return nil, newError(resp.StatusCode, raw, requestID)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, raw, requestID)
	}
	return raw, nil
}

// forceLogout borra la sesión y redirige a login a todos los navegadores registrados.
func (c *Client) forceLogout(requestID string, r request) {
	if err := c.session.Clear(); err != nil {
		c.log.Error().Err(err).Str("request_id", requestID).Msg("no se pudo borrar la sesión tras 401")
	}
	c.metrics.ForcedLogout()
	c.log.Warn().
		Str("request_id", requestID).
		Str("method", r.method).
		Str("route", r.route).
		Msg("401 del backend: sesión revocada, redirigiendo a login")

	c.mu.RLock()
	navs := append([]ports.Navigator(nil), c.navigators...)
	c.mu.RUnlock()
	for _, n := range navs {
		n.RedirectToLogin()
	}
}

// jsonBody serializa in para peticiones JSON.
func jsonBody(in any) (io.Reader, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("api: serializar request: %w", err)
	}
	return bytes.NewReader(b), nil
}

// unwrapData devuelve el contenido de "data" si la respuesta viene envuelta
// ({"success": true, "data": ...}); si no, el cuerpo tal cual.
func unwrapData(body []byte) []byte {
	data := gjson.GetBytes(body, "data")
	if data.Exists() && (data.IsObject() || data.IsArray()) {
		return []byte(data.Raw)
	}
	return body
}

// escape codifica un segmento de ruta (IDs).
func escape(id string) string {
	return url.PathEscape(id)
}
