// Package apiclient is a typed client for the dispatch REST API.
//
// Non-2xx responses are returned as *Error carrying the decoded body, so
// callers can show the server's message as is. Transport failures are
// returned as plain wrapped errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/diones-souza/test-snaty/internal/apitypes"
)

// RequestIDHeader carries a per-call identifier the server logs.
const RequestIDHeader = "X-Request-Id"

// Error is a non-2xx response.
// Payload is a string for text bodies and JSON strings, the decoded value for
// other JSON documents, and nil for an empty body.
type Error struct {
	StatusCode int
	Payload    any
}

func (e *Error) Error() string {
	if s, ok := e.Payload.(string); ok && s != "" {
		return s
	}
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client calls the dispatch API. It is safe for concurrent use.
type Client struct {
	base *url.URL
	http *http.Client
	log  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds every call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		h := *c.http
		h.Timeout = d
		c.http = &h
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("apiclient.New: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("apiclient.New: base URL %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	c := &Client{base: base, http: &http.Client{}, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// --- clients ----------------------------------------------------------------

func (c *Client) ListClients(ctx context.Context) ([]apitypes.Client, error) {
	return call[[]apitypes.Client](ctx, c, http.MethodGet, "Cliente", nil)
}

func (c *Client) GetClient(ctx context.Context, id int64) (apitypes.Client, error) {
	return call[apitypes.Client](ctx, c, http.MethodGet, idPath("Cliente", id), nil)
}

func (c *Client) CreateClient(ctx context.Context, v apitypes.Client) (apitypes.Client, error) {
	return call[apitypes.Client](ctx, c, http.MethodPost, "Cliente", v)
}

func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	_, err := call[none](ctx, c, http.MethodDelete, idPath("Cliente", id), nil)
	return err
}

// --- conductors -------------------------------------------------------------

func (c *Client) ListConductors(ctx context.Context) ([]apitypes.Conductor, error) {
	return call[[]apitypes.Conductor](ctx, c, http.MethodGet, "Condutor", nil)
}

func (c *Client) GetConductor(ctx context.Context, id int64) (apitypes.Conductor, error) {
	return call[apitypes.Conductor](ctx, c, http.MethodGet, idPath("Condutor", id), nil)
}

func (c *Client) CreateConductor(ctx context.Context, v apitypes.Conductor) (apitypes.Conductor, error) {
	return call[apitypes.Conductor](ctx, c, http.MethodPost, "Condutor", v)
}

func (c *Client) DeleteConductor(ctx context.Context, id int64) error {
	_, err := call[none](ctx, c, http.MethodDelete, idPath("Condutor", id), nil)
	return err
}

// --- vehicles ---------------------------------------------------------------

func (c *Client) ListVehicles(ctx context.Context) ([]apitypes.Vehicle, error) {
	return call[[]apitypes.Vehicle](ctx, c, http.MethodGet, "Veiculo", nil)
}

func (c *Client) GetVehicle(ctx context.Context, id int64) (apitypes.Vehicle, error) {
	return call[apitypes.Vehicle](ctx, c, http.MethodGet, idPath("Veiculo", id), nil)
}

func (c *Client) CreateVehicle(ctx context.Context, v apitypes.Vehicle) (apitypes.Vehicle, error) {
	return call[apitypes.Vehicle](ctx, c, http.MethodPost, "Veiculo", v)
}

func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	_, err := call[none](ctx, c, http.MethodDelete, idPath("Veiculo", id), nil)
	return err
}

// --- displacements ----------------------------------------------------------

func (c *Client) ListDisplacements(ctx context.Context) ([]apitypes.Displacement, error) {
	return call[[]apitypes.Displacement](ctx, c, http.MethodGet, "Deslocamento", nil)
}

func (c *Client) GetDisplacement(ctx context.Context, id int64) (apitypes.Displacement, error) {
	return call[apitypes.Displacement](ctx, c, http.MethodGet, idPath("Deslocamento", id), nil)
}

// StartDisplacement posts to Deslocamento/IniciarDeslocamento.
func (c *Client) StartDisplacement(ctx context.Context, body apitypes.StartDisplacement) (apitypes.Displacement, error) {
	return call[apitypes.Displacement](ctx, c, http.MethodPost, "Deslocamento/IniciarDeslocamento", body)
}

// CloseDisplacement puts to Deslocamento/{id}/EncerrarDeslocamento.
func (c *Client) CloseDisplacement(ctx context.Context, id int64, body apitypes.CloseDisplacement) (apitypes.Displacement, error) {
	return call[apitypes.Displacement](ctx, c, http.MethodPut, idPath("Deslocamento", id)+"/EncerrarDeslocamento", body)
}

func (c *Client) DeleteDisplacement(ctx context.Context, id int64) error {
	_, err := call[none](ctx, c, http.MethodDelete, idPath("Deslocamento", id), nil)
	return err
}

// ExportDisplacements downloads the displacement export in format
// ("csv" or "xlsx").
func (c *Client) ExportDisplacements(ctx context.Context, format string) ([]byte, error) {
	q := url.Values{"format": {format}}
	resp, err := c.send(ctx, http.MethodGet, "Deslocamento/Exportar?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: read export: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, newError(resp, data)
	}
	return data, nil
}

// --- transport --------------------------------------------------------------

// none is the result type of calls without a response body.
type none struct{}

func idPath(resource string, id int64) string {
	return resource + "/" + strconv.FormatInt(id, 10)
}

// call sends a JSON request and decodes a JSON response into T.
func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("apiclient: %s %s: read body: %w", method, path, err)
	}
	if resp.StatusCode/100 != 2 {
		return out, newError(resp, data)
	}
	if _, ok := any(out).(none); ok || len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("apiclient: %s %s: decode: %w", method, path, err)
	}
	return out, nil
}

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	target := c.base.ResolveReference(ref)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("apiclient: %s %s: encode: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	c.log.DebugContext(ctx, "api call",
		"method", method,
		"path", target.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)
	return resp, nil
}

// newError decodes an error body. JSON documents are decoded generically;
// anything else is kept as trimmed text.
func newError(resp *http.Response, data []byte) *Error {
	e := &Error{StatusCode: resp.StatusCode}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return e
	}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") {
		var v any
		if err := json.Unmarshal(data, &v); err == nil {
			e.Payload = v
			return e
		}
	}
	e.Payload = text
	return e
}
