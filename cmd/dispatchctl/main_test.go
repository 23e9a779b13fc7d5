package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/console"
)

// fakeServer answers the few endpoints the commands below hit.
type fakeServer struct {
	mu      sync.Mutex
	started []apitypes.StartDisplacement
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("GET /Deslocamento", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []apitypes.Displacement{{ID: 7, StartOdometer: 100, StartTime: "2026-01-05T08:00:00"}})
	})
	mux.HandleFunc("GET /Cliente", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []apitypes.Client{{ID: 1, Name: "Maria"}})
	})
	mux.HandleFunc("GET /Condutor", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []apitypes.Conductor{{ID: 2, Name: "João"}})
	})
	mux.HandleFunc("GET /Veiculo", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []apitypes.Vehicle{{ID: 3, Plate: "ABC1D23"}})
	})
	mux.HandleFunc("POST /Deslocamento/IniciarDeslocamento", func(w http.ResponseWriter, r *http.Request) {
		var body apitypes.StartDisplacement
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.started = append(f.started, body)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, apitypes.Displacement{ID: 8})
	})
	mux.HandleFunc("DELETE /Cliente/{id}", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Cliente não encontrado", http.StatusNotFound)
	})
	mux.HandleFunc("GET /Deslocamento/Exportar", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id\n7\n"))
	})
	return mux
}

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--api-url", srv.URL}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTripsList(t *testing.T) {
	srv := httptest.NewServer((&fakeServer{}).handler())
	defer srv.Close()

	out, err := run(t, srv, "trips", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "05/01/2026 8:00:00")
	assert.Contains(t, out, console.ActionClose)
}

func TestTripsStart(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	out, err := run(t, srv, "trips", "start",
		"--km-inicial", "120", "--motivo", "Entrega",
		"--cliente", "1", "--condutor", "2", "--veiculo", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "[sucesso]")
	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.started, 1)
	assert.Equal(t, apitypes.StartDisplacement{
		StartOdometer: 120,
		Reason:        "Entrega",
		ClientID:      1,
		ConductorID:   2,
		VehicleID:     3,
	}, fake.started[0])
}

func TestTripsStart_MissingReferences(t *testing.T) {
	fake := &fakeServer{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	out, err := run(t, srv, "trips", "start", "--km-inicial", "120")

	require.ErrorIs(t, err, console.ErrReported)
	assert.Contains(t, out, "idVeiculo: Deve ser um número")
	assert.Empty(t, fake.started)
}

func TestClientsDelete_ServerMessage(t *testing.T) {
	srv := httptest.NewServer((&fakeServer{}).handler())
	defer srv.Close()

	out, err := run(t, srv, "clients", "delete", "4", "5")

	require.ErrorIs(t, err, console.ErrReported)
	assert.Equal(t, "[erro] Cliente não encontrado, Cliente não encontrado\n", out)
}

func TestClientsDelete_InvalidID(t *testing.T) {
	srv := httptest.NewServer((&fakeServer{}).handler())
	defer srv.Close()

	_, err := run(t, srv, "clients", "delete", "abc")

	require.Error(t, err)
	assert.NotErrorIs(t, err, console.ErrReported)
}

func TestTripsExport(t *testing.T) {
	srv := httptest.NewServer((&fakeServer{}).handler())
	defer srv.Close()
	path := filepath.Join(t.TempDir(), "out.csv")

	out, err := run(t, srv, "trips", "export", "--out", path)

	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id\n7\n", string(data))
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", "20"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 20}, ids)

	_, err = parseIDs([]string{"0"})
	assert.Error(t, err)
}
