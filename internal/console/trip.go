package console

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/tripform"
)

// MessageInvalid precedes the per-field validation messages.
const MessageInvalid = "Corrija os campos abaixo"

// TripInput is what the operator typed into the trip form. Fields and
// References are keyed by the tripform field names; references hold the
// picked entity id.
type TripInput struct {
	Fields     map[string]string
	References map[string]int64
}

// StartTrip opens the form in start mode, picks the references from the
// fetched lists, fills the fields and submits.
func (c *Console) StartTrip(ctx context.Context, in TripInput) error {
	var status tripform.Status
	form := c.newForm(&status)
	if err := form.Open(ctx, nil); err != nil {
		return c.fail(err)
	}
	snap := form.Snapshot()
	fmt.Fprintln(c.out, snap.Title)
	for _, field := range slices.Sorted(maps.Keys(in.References)) {
		id := in.References[field]
		ref, ok := pick(snap.References, field, id)
		if !ok {
			form.Close()
			c.notify.Notify(fmt.Sprintf("%s #%d não encontrado", refLabel(field), id), tripform.StatusError)
			return ErrReported
		}
		form.OnReferenceChange(field, ref)
	}
	return c.submit(ctx, form, in.Fields, &status)
}

// CloseTrip opens the form on displacement id and submits the closing
// fields. A trip that is already closed is reported without opening the
// form.
func (c *Console) CloseTrip(ctx context.Context, id int64, in TripInput) error {
	rec, err := c.api.GetDisplacement(ctx, id)
	if err != nil {
		return c.fail(err)
	}
	if !rec.IsOpen() {
		c.notify.Notify(fmt.Sprintf("Deslocamento #%d já foi encerrado", id), tripform.StatusError)
		return ErrReported
	}
	var status tripform.Status
	form := c.newForm(&status)
	if err := form.Open(ctx, &rec); err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.out, form.Snapshot().Title)
	return c.submit(ctx, form, in.Fields, &status)
}

func (c *Console) newForm(status *tripform.Status) *tripform.Form {
	return tripform.New(c.api,
		tripform.WithLogger(c.log),
		tripform.WithOnSave(func(message string, s tripform.Status) {
			*status = s
			c.notify.Notify(message, s)
		}),
	)
}

// submit fills fields and submits. Without a save callback the draft
// failed validation and the messages are printed.
func (c *Console) submit(ctx context.Context, form *tripform.Form, fields map[string]string, status *tripform.Status) error {
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		form.OnFieldChange(field, fields[field])
	}
	form.Submit(ctx)
	switch *status {
	case tripform.StatusSuccess:
		return nil
	case tripform.StatusError:
		return ErrReported
	}
	c.notify.Notify(MessageInvalid, tripform.StatusError)
	c.writeFieldErrors(form.Snapshot().Errors)
	form.Close()
	return ErrReported
}

func pick(refs tripform.References, field string, id int64) (apitypes.Reference, bool) {
	switch field {
	case tripform.FieldClient:
		return find(refs.Clients, id)
	case tripform.FieldConductor:
		return find(refs.Conductors, id)
	case tripform.FieldVehicle:
		return find(refs.Vehicles, id)
	}
	return nil, false
}

func find[T apitypes.Reference](list []T, id int64) (apitypes.Reference, bool) {
	for _, v := range list {
		if v.RefID() == id {
			return v, true
		}
	}
	return nil, false
}

func refLabel(field string) string {
	switch field {
	case tripform.FieldClient:
		return "Cliente"
	case tripform.FieldConductor:
		return "Condutor"
	case tripform.FieldVehicle:
		return "Veículo"
	}
	return field
}
