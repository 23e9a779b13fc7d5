package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/handler"
	"github.com/diones-souza/test-snaty/internal/handler/gen"
)

// ---- hand-written test doubles ---------------------------------------------
// Set only the method fields your test needs.

type mockDisplacementServicer struct {
	start   func(ctx context.Context, d domain.Displacement) (domain.Displacement, error)
	close   func(ctx context.Context, c domain.Closing) (domain.Displacement, error)
	getByID func(ctx context.Context, id int64) (domain.Displacement, error)
	list    func(ctx context.Context) ([]domain.Displacement, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockDisplacementServicer) Start(ctx context.Context, d domain.Displacement) (domain.Displacement, error) {
	return m.start(ctx, d)
}
func (m *mockDisplacementServicer) Close(ctx context.Context, c domain.Closing) (domain.Displacement, error) {
	return m.close(ctx, c)
}
func (m *mockDisplacementServicer) GetByID(ctx context.Context, id int64) (domain.Displacement, error) {
	return m.getByID(ctx, id)
}
func (m *mockDisplacementServicer) List(ctx context.Context) ([]domain.Displacement, error) {
	return m.list(ctx)
}
func (m *mockDisplacementServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockReferenceServicer[T any] struct {
	create  func(ctx context.Context, v T) (T, error)
	getByID func(ctx context.Context, id int64) (T, error)
	list    func(ctx context.Context) ([]T, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockReferenceServicer[T]) Create(ctx context.Context, v T) (T, error) {
	return m.create(ctx, v)
}
func (m *mockReferenceServicer[T]) GetByID(ctx context.Context, id int64) (T, error) {
	return m.getByID(ctx, id)
}
func (m *mockReferenceServicer[T]) List(ctx context.Context) ([]T, error) {
	return m.list(ctx)
}
func (m *mockReferenceServicer[T]) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.DisplacementServicer             = (*mockDisplacementServicer)(nil)
	_ handler.ReferenceServicer[domain.Client] = (*mockReferenceServicer[domain.Client])(nil)
	_ handler.ExportServicer                   = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps groups the mocks wired into a Server; nil fields stay nil.
type deps struct {
	displacements *mockDisplacementServicer
	clients       *mockReferenceServicer[domain.Client]
	conductors    *mockReferenceServicer[domain.Conductor]
	vehicles      *mockReferenceServicer[domain.Vehicle]
	export        *mockExportServicer
}

// newHTTPHandler wires a Server with the given mocks into the generated chi
// router. This mirrors how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	var (
		displacements handler.DisplacementServicer
		clients       handler.ReferenceServicer[domain.Client]
		conductors    handler.ReferenceServicer[domain.Conductor]
		vehicles      handler.ReferenceServicer[domain.Vehicle]
		export        handler.ExportServicer
	)
	if d.displacements != nil {
		displacements = d.displacements
	}
	if d.clients != nil {
		clients = d.clients
	}
	if d.conductors != nil {
		conductors = d.conductors
	}
	if d.vehicles != nil {
		vehicles = d.vehicles
	}
	if d.export != nil {
		export = d.export
	}
	srv := handler.NewServer(displacements, clients, conductors, vehicles, export)
	return gen.Handler(gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions()))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func serve(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
