package console_test

import (
	"context"
	"net/http"
	"sync"

	"github.com/diones-souza/test-snaty/internal/apiclient"
	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/console"
)

// ---- in-memory test double --------------------------------------------------
// Records live in slices; set the err fields to make a call fail.

type fakeAPI struct {
	mu         sync.Mutex
	clients    []apitypes.Client
	conductors []apitypes.Conductor
	vehicles   []apitypes.Vehicle
	trips      []apitypes.Displacement

	started []apitypes.StartDisplacement
	closed  []apitypes.CloseDisplacement
	deleted []int64

	listErr   error
	createErr error
	submitErr error
	exportErr error
	// deleteErr maps an id to the failure of its delete.
	deleteErr map[int64]error
}

var _ console.API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		clients:    []apitypes.Client{{ID: 1, Name: "Maria", City: "Recife"}},
		conductors: []apitypes.Conductor{{ID: 2, Name: "João", LicenseExpiry: "2027-03-15"}},
		vehicles:   []apitypes.Vehicle{{ID: 3, Plate: "ABC1D23", MakeModel: "Fiat Strada", Year: 2020, CurrentKm: 1500}},
	}
}

func notFound(msg string) error {
	return &apiclient.Error{StatusCode: http.StatusNotFound, Payload: msg}
}

func (f *fakeAPI) ListClients(context.Context) ([]apitypes.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clients, f.listErr
}

func (f *fakeAPI) ListConductors(context.Context) ([]apitypes.Conductor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conductors, f.listErr
}

func (f *fakeAPI) ListVehicles(context.Context) ([]apitypes.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vehicles, f.listErr
}

func (f *fakeAPI) ListDisplacements(context.Context) ([]apitypes.Displacement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.trips, f.listErr
}

func (f *fakeAPI) GetDisplacement(_ context.Context, id int64) (apitypes.Displacement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.trips {
		if d.ID == id {
			return d, nil
		}
	}
	return apitypes.Displacement{}, notFound("Deslocamento não encontrado")
}

func (f *fakeAPI) CreateClient(_ context.Context, v apitypes.Client) (apitypes.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return apitypes.Client{}, f.createErr
	}
	v.ID = int64(len(f.clients) + 1)
	f.clients = append(f.clients, v)
	return v, nil
}

func (f *fakeAPI) CreateConductor(_ context.Context, v apitypes.Conductor) (apitypes.Conductor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return apitypes.Conductor{}, f.createErr
	}
	f.conductors = append(f.conductors, v)
	return v, nil
}

func (f *fakeAPI) CreateVehicle(_ context.Context, v apitypes.Vehicle) (apitypes.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return apitypes.Vehicle{}, f.createErr
	}
	f.vehicles = append(f.vehicles, v)
	return v, nil
}

func (f *fakeAPI) remove(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.deleteErr[id]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) DeleteClient(_ context.Context, id int64) error       { return f.remove(id) }
func (f *fakeAPI) DeleteConductor(_ context.Context, id int64) error    { return f.remove(id) }
func (f *fakeAPI) DeleteVehicle(_ context.Context, id int64) error      { return f.remove(id) }
func (f *fakeAPI) DeleteDisplacement(_ context.Context, id int64) error { return f.remove(id) }

func (f *fakeAPI) StartDisplacement(_ context.Context, body apitypes.StartDisplacement) (apitypes.Displacement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, body)
	if f.submitErr != nil {
		return apitypes.Displacement{}, f.submitErr
	}
	return apitypes.Displacement{ID: 10}, nil
}

func (f *fakeAPI) CloseDisplacement(_ context.Context, id int64, body apitypes.CloseDisplacement) (apitypes.Displacement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, body)
	if f.submitErr != nil {
		return apitypes.Displacement{}, f.submitErr
	}
	return apitypes.Displacement{ID: id}, nil
}

func (f *fakeAPI) ExportDisplacements(_ context.Context, format string) ([]byte, error) {
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return []byte("export:" + format), nil
}
