// Package tripform is the two-phase trip dialog: START creates an open
// displacement and CLOSE records its closing reading.
//
// The Form holds the dialog state (draft, field errors, reference lists,
// loading flag) independently of any rendering. Every Open and every Submit
// carries a correlation token; a network completion whose token is no longer
// current never writes into the form.
package tripform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/diones-souza/test-snaty/internal/apiclient"
	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/datefmt"
)

// Status is the outcome reported through the save callback.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	// MessageSaved is reported after a successful submit.
	MessageSaved = "Registro salvo com sucesso!"

	// MessageUnknown is reported when a failed response carries no text.
	MessageUnknown = "An unknown error occurred. Please try again later."
)

// Draft field names, as used on the wire.
const (
	FieldID            = "id"
	FieldStartOdometer = "kmInicial"
	FieldEndOdometer   = "kmFinal"
	FieldStartTime     = "inicioDeslocamento"
	FieldEndTime       = "fimDeslocamento"
	FieldChecklist     = "checkList"
	FieldReason        = "motivo"
	FieldNotes         = "observacao"
	FieldConductor     = "idCondutor"
	FieldVehicle       = "idVeiculo"
	FieldClient        = "idCliente"
)

// Mode is the phase the form was opened in.
type Mode int

const (
	ModeStart Mode = iota
	ModeClose
)

func (m Mode) String() string {
	if m == ModeClose {
		return "close"
	}
	return "start"
}

// API is the subset of the REST client the form calls.
type API interface {
	ListClients(ctx context.Context) ([]apitypes.Client, error)
	ListConductors(ctx context.Context) ([]apitypes.Conductor, error)
	ListVehicles(ctx context.Context) ([]apitypes.Vehicle, error)
	StartDisplacement(ctx context.Context, body apitypes.StartDisplacement) (apitypes.Displacement, error)
	CloseDisplacement(ctx context.Context, id int64, body apitypes.CloseDisplacement) (apitypes.Displacement, error)
}

var _ API = (*apiclient.Client)(nil)

// Draft is the editable content of the dialog. Text fields hold what the
// operator typed; references hold the picked entity id, nil when none.
type Draft struct {
	ID            int64
	StartOdometer string
	EndOdometer   string
	StartTime     string
	EndTime       string
	Checklist     string
	Reason        string
	Notes         string
	ConductorID   *int64
	VehicleID     *int64
	ClientID      *int64
}

// References are the lists offered for the reference pickers.
type References struct {
	Clients    []apitypes.Client
	Conductors []apitypes.Conductor
	Vehicles   []apitypes.Vehicle
}

// Snapshot is an immutable copy of the form state for rendering.
type Snapshot struct {
	Open       bool
	Loading    bool
	Mode       Mode
	Title      string
	Draft      Draft
	Errors     map[string]string
	References References
}

// Option configures a Form.
type Option func(*Form)

// WithOnSave sets the callback that receives every submit outcome.
func WithOnSave(fn func(message string, status Status)) Option {
	return func(f *Form) { f.onSave = fn }
}

// WithOnClose sets the callback invoked whenever the dialog closes.
func WithOnClose(fn func()) Option {
	return func(f *Form) { f.onClose = fn }
}

// WithLogger sets the logger for fetch failures and stale completions.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) { f.log = l }
}

// Form is the trip dialog controller. It is safe for concurrent use; network
// calls run without holding the lock, so Close is never blocked by them.
type Form struct {
	api     API
	onSave  func(string, Status)
	onClose func()
	log     *slog.Logger

	mu      sync.Mutex
	token   uuid.UUID
	open    bool
	loading bool
	mode    Mode
	closeID int64
	draft   Draft
	errors  map[string]string
	refs    References
}

// New returns a closed Form that talks to api.
func New(api API, opts ...Option) *Form {
	f := &Form{
		api:     api,
		onSave:  func(string, Status) {},
		onClose: func() {},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open shows the dialog. A nil existing record opens START: the draft is
// cleared and the three reference lists are fetched, with loading set until
// they arrive. A non-nil record opens CLOSE with its closing fields
// pre-populated and no fetch.
//
// Open blocks while fetching. A fetch failure is returned and logged, the
// lists stay empty, and loading is reset.
func (f *Form) Open(ctx context.Context, existing *apitypes.Displacement) error {
	f.mu.Lock()
	f.token = uuid.New()
	f.open = true
	f.errors = nil
	f.refs = References{}
	if existing != nil {
		f.mode = ModeClose
		f.closeID = existing.ID
		f.draft = closeDraft(*existing)
		f.loading = false
		f.mu.Unlock()
		return nil
	}
	f.mode = ModeStart
	f.closeID = 0
	f.draft = Draft{}
	f.loading = true
	tok := f.token
	f.mu.Unlock()

	refs, err := f.fetchReferences(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.token != tok {
		f.log.DebugContext(ctx, "tripform: stale reference fetch dropped", "error", err)
		return err
	}
	f.loading = false
	if err != nil {
		f.log.ErrorContext(ctx, "tripform: fetch references", "error", err)
		return err
	}
	f.refs = refs
	return nil
}

// fetchReferences loads the three lists concurrently; any failure discards
// all of them.
func (f *Form) fetchReferences(ctx context.Context) (References, error) {
	var refs References
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		refs.Clients, err = f.api.ListClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		refs.Conductors, err = f.api.ListConductors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		refs.Vehicles, err = f.api.ListVehicles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return References{}, fmt.Errorf("tripform: fetch references: %w", err)
	}
	return refs, nil
}

// OnFieldChange stores value under field. Reference fields accept an
// integer id; anything else clears the reference. Unknown fields are ignored.
func (f *Form) OnFieldChange(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return
	}
	d := &f.draft
	switch field {
	case FieldStartOdometer:
		d.StartOdometer = value
	case FieldEndOdometer:
		d.EndOdometer = value
	case FieldStartTime:
		d.StartTime = value
	case FieldEndTime:
		d.EndTime = value
	case FieldChecklist:
		d.Checklist = value
	case FieldReason:
		d.Reason = value
	case FieldNotes:
		d.Notes = value
	case FieldClient, FieldConductor, FieldVehicle:
		var id *int64
		if n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
			id = &n
		}
		f.setRef(field, id)
	default:
		f.log.Debug("tripform: unknown field", "field", field)
	}
}

// OnReferenceChange stores the picked entity's id under field, or clears the
// reference when ref is nil.
func (f *Form) OnReferenceChange(field string, ref apitypes.Reference) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return
	}
	var id *int64
	if ref != nil {
		n := ref.RefID()
		id = &n
	}
	f.setRef(field, id)
}

func (f *Form) setRef(field string, id *int64) {
	switch field {
	case FieldClient:
		f.draft.ClientID = id
	case FieldConductor:
		f.draft.ConductorID = id
	case FieldVehicle:
		f.draft.VehicleID = id
	}
}

// Submit validates the draft for the current mode and sends it.
//
// Validation failures set one message per field and send nothing. On
// success the dialog closes and the save callback receives MessageSaved. On
// failure the callback receives the server's text (or MessageUnknown) with
// StatusError and the dialog stays open. Submit does nothing while loading
// or when the dialog is closed.
func (f *Form) Submit(ctx context.Context) {
	f.mu.Lock()
	if !f.open || f.loading {
		f.mu.Unlock()
		return
	}
	mode, closeID, d := f.mode, f.closeID, f.draft
	var errs map[string]string
	if mode == ModeStart {
		errs = fieldErrors(startInput{
			StartOdometer: d.StartOdometer,
			StartTime:     strings.TrimSpace(d.StartTime),
			ConductorID:   d.ConductorID,
			VehicleID:     d.VehicleID,
			ClientID:      d.ClientID,
		})
	} else {
		errs = fieldErrors(closeInput{
			EndOdometer: d.EndOdometer,
			EndTime:     strings.TrimSpace(d.EndTime),
		})
	}
	f.errors = errs
	if len(errs) > 0 {
		f.mu.Unlock()
		return
	}
	f.loading = true
	tok := f.token
	f.mu.Unlock()

	var err error
	if mode == ModeStart {
		_, err = f.api.StartDisplacement(ctx, startRequest(d))
	} else {
		_, err = f.api.CloseDisplacement(ctx, closeID, closeRequest(d))
	}

	f.mu.Lock()
	current := f.open && f.token == tok
	if err != nil {
		if !current {
			f.mu.Unlock()
			f.log.DebugContext(ctx, "tripform: stale submit failure dropped", "error", err)
			return
		}
		f.loading = false
		f.mu.Unlock()
		f.onSave(ErrorMessage(err), StatusError)
		return
	}
	if current {
		f.reset()
	}
	f.mu.Unlock()
	if current {
		f.onClose()
	} else {
		f.log.DebugContext(ctx, "tripform: stale submit succeeded")
	}
	f.onSave(MessageSaved, StatusSuccess)
}

// Close discards the draft, resets loading, and notifies the caller. It is
// always allowed, even while a request is in flight.
func (f *Form) Close() {
	f.mu.Lock()
	f.reset()
	f.mu.Unlock()
	f.onClose()
}

// reset returns the form to its closed state and invalidates in-flight
// completions. Callers hold f.mu.
func (f *Form) reset() {
	f.token = uuid.New()
	f.open = false
	f.loading = false
	f.draft = Draft{}
	f.errors = nil
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := Snapshot{
		Open:    f.open,
		Loading: f.loading,
		Mode:    f.mode,
		Draft:   f.draft,
		Errors:  maps.Clone(f.errors),
		References: References{
			Clients:    slices.Clone(f.refs.Clients),
			Conductors: slices.Clone(f.refs.Conductors),
			Vehicles:   slices.Clone(f.refs.Vehicles),
		},
	}
	s.Draft.ClientID = clonePtr(f.draft.ClientID)
	s.Draft.ConductorID = clonePtr(f.draft.ConductorID)
	s.Draft.VehicleID = clonePtr(f.draft.VehicleID)
	if f.mode == ModeClose {
		s.Title = fmt.Sprintf("Encerrar Deslocamento #%d", f.closeID)
	} else {
		s.Title = "Iniciar Deslocamento"
	}
	return s
}

// closeDraft pre-populates the dialog from an existing record. Dates are
// normalized for display.
func closeDraft(rec apitypes.Displacement) Draft {
	d := Draft{
		ID:            rec.ID,
		StartOdometer: formatNumber(rec.StartOdometer),
		StartTime:     datefmt.NormalizeDateTime(rec.StartTime),
		EndTime:       datefmt.NormalizeDateTime(rec.EndTime),
		Checklist:     rec.Checklist,
		Reason:        rec.Reason,
		Notes:         rec.Notes,
		ConductorID:   idPtr(rec.ConductorID),
		VehicleID:     idPtr(rec.VehicleID),
		ClientID:      idPtr(rec.ClientID),
	}
	if rec.EndOdometer != nil {
		d.EndOdometer = formatNumber(*rec.EndOdometer)
	}
	return d
}

func startRequest(d Draft) apitypes.StartDisplacement {
	km, _ := parseNumber(d.StartOdometer)
	return apitypes.StartDisplacement{
		StartOdometer: km,
		StartTime:     wireTime(d.StartTime),
		Checklist:     d.Checklist,
		Reason:        d.Reason,
		Notes:         d.Notes,
		ConductorID:   *d.ConductorID,
		VehicleID:     *d.VehicleID,
		ClientID:      *d.ClientID,
	}
}

func closeRequest(d Draft) apitypes.CloseDisplacement {
	km, _ := parseNumber(d.EndOdometer)
	return apitypes.CloseDisplacement{
		ID:          d.ID,
		EndOdometer: km,
		EndTime:     wireTime(d.EndTime),
		Notes:       d.Notes,
	}
}

// wireTime converts draft text to the wire layout. Empty stays empty so the
// server stamps the current time.
func wireTime(s string) string {
	t, err := datefmt.Parse(s)
	if err != nil {
		return ""
	}
	return t.Format(datefmt.WireLayout)
}

// ErrorMessage picks the text shown for a failed call: the response body
// when it is text, the error itself when there was no response body, and
// MessageUnknown for structured bodies.
func ErrorMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch p := apiErr.Payload.(type) {
		case string:
			return p
		case nil:
			return apiErr.Error()
		default:
			return MessageUnknown
		}
	}
	return err.Error()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func idPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func clonePtr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
