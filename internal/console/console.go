// Package console drives the dispatch dashboard from a terminal. It renders
// the entity grids, runs the trip form against typed-in fields, performs
// bulk deletes and prints one notification per outcome.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/diones-souza/test-snaty/internal/apiclient"
	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/dashboard"
	"github.com/diones-souza/test-snaty/internal/tripform"
)

// ErrReported is returned after a failure has already been shown to the
// operator.
var ErrReported = errors.New("console: failure reported")

// ChartWidth is the length of the longest dashboard bar.
const ChartWidth = 40

// API is the part of the dispatch API the console uses.
type API interface {
	tripform.API
	CreateClient(ctx context.Context, v apitypes.Client) (apitypes.Client, error)
	DeleteClient(ctx context.Context, id int64) error
	CreateConductor(ctx context.Context, v apitypes.Conductor) (apitypes.Conductor, error)
	DeleteConductor(ctx context.Context, id int64) error
	CreateVehicle(ctx context.Context, v apitypes.Vehicle) (apitypes.Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
	ListDisplacements(ctx context.Context) ([]apitypes.Displacement, error)
	GetDisplacement(ctx context.Context, id int64) (apitypes.Displacement, error)
	DeleteDisplacement(ctx context.Context, id int64) error
	ExportDisplacements(ctx context.Context, format string) ([]byte, error)
}

var _ API = (*apiclient.Client)(nil)

// Console renders to out and reports outcomes through a Notifier on the
// same writer.
type Console struct {
	api    API
	out    io.Writer
	notify *Notifier
	log    *slog.Logger
}

// New returns a Console. A nil logger uses slog.Default.
func New(api API, out io.Writer, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{api: api, out: out, notify: NewNotifier(out), log: log}
}

// Clients prints the clients grid.
func (c *Console) Clients(ctx context.Context) error {
	list, err := c.api.ListClients(ctx)
	if err != nil {
		return c.fail(err)
	}
	return WriteClients(c.out, list)
}

// Conductors prints the conductors grid.
func (c *Console) Conductors(ctx context.Context) error {
	list, err := c.api.ListConductors(ctx)
	if err != nil {
		return c.fail(err)
	}
	return WriteConductors(c.out, list)
}

// Vehicles prints the vehicles grid.
func (c *Console) Vehicles(ctx context.Context) error {
	list, err := c.api.ListVehicles(ctx)
	if err != nil {
		return c.fail(err)
	}
	return WriteVehicles(c.out, list)
}

// Displacements prints the displacements grid.
func (c *Console) Displacements(ctx context.Context) error {
	list, err := c.api.ListDisplacements(ctx)
	if err != nil {
		return c.fail(err)
	}
	return WriteDisplacements(c.out, list)
}

// CreateClient registers v.
func (c *Console) CreateClient(ctx context.Context, v apitypes.Client) error {
	_, err := c.api.CreateClient(ctx, v)
	return c.saved(err)
}

// CreateConductor registers v.
func (c *Console) CreateConductor(ctx context.Context, v apitypes.Conductor) error {
	_, err := c.api.CreateConductor(ctx, v)
	return c.saved(err)
}

// CreateVehicle registers v.
func (c *Console) CreateVehicle(ctx context.Context, v apitypes.Vehicle) error {
	_, err := c.api.CreateVehicle(ctx, v)
	return c.saved(err)
}

// DeleteClients removes the clients with the given ids.
func (c *Console) DeleteClients(ctx context.Context, ids []int64) error {
	return c.deleteAll(ctx, ids, c.api.DeleteClient)
}

// DeleteConductors removes the conductors with the given ids.
func (c *Console) DeleteConductors(ctx context.Context, ids []int64) error {
	return c.deleteAll(ctx, ids, c.api.DeleteConductor)
}

// DeleteVehicles removes the vehicles with the given ids.
func (c *Console) DeleteVehicles(ctx context.Context, ids []int64) error {
	return c.deleteAll(ctx, ids, c.api.DeleteVehicle)
}

// DeleteDisplacements removes the displacements with the given ids.
func (c *Console) DeleteDisplacements(ctx context.Context, ids []int64) error {
	return c.deleteAll(ctx, ids, c.api.DeleteDisplacement)
}

func (c *Console) deleteAll(ctx context.Context, ids []int64, del DeleteFunc) error {
	msg, status := DeleteAll(ctx, ids, del)
	c.notify.Notify(msg, status)
	if status == tripform.StatusError {
		return ErrReported
	}
	return nil
}

// Export writes the displacements in format ("csv" or "xlsx") to w.
func (c *Console) Export(ctx context.Context, format string, w io.Writer) error {
	data, err := c.api.ExportDisplacements(ctx, format)
	if err != nil {
		return c.fail(err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("console.Console.Export: %w", err)
	}
	return nil
}

// Dashboard fetches the four lists concurrently and prints the summary.
func (c *Console) Dashboard(ctx context.Context) error {
	var (
		clients    []apitypes.Client
		conductors []apitypes.Conductor
		vehicles   []apitypes.Vehicle
		trips      []apitypes.Displacement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { clients, err = c.api.ListClients(gctx); return })
	g.Go(func() (err error) { conductors, err = c.api.ListConductors(gctx); return })
	g.Go(func() (err error) { vehicles, err = c.api.ListVehicles(gctx); return })
	g.Go(func() (err error) { trips, err = c.api.ListDisplacements(gctx); return })
	if err := g.Wait(); err != nil {
		return c.fail(err)
	}
	return dashboard.Render(c.out, dashboard.Summarize(clients, conductors, vehicles, trips), ChartWidth)
}

// saved reports the outcome of a create.
func (c *Console) saved(err error) error {
	if err != nil {
		return c.fail(err)
	}
	c.notify.Notify(tripform.MessageSaved, tripform.StatusSuccess)
	return nil
}

// fail logs err and shows its operator-facing message.
func (c *Console) fail(err error) error {
	c.log.Debug("console: request failed", "error", err)
	c.notify.Notify(tripform.ErrorMessage(err), tripform.StatusError)
	return ErrReported
}

// writeFieldErrors prints validation messages ordered by field name.
func (c *Console) writeFieldErrors(errs map[string]string) {
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		fmt.Fprintf(c.out, "  %s: %s\n", field, errs[field])
	}
}
