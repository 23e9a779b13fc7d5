package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diones-souza/test-snaty/internal/console"
	"github.com/diones-souza/test-snaty/internal/tripform"
)

func newTripsCmd(a *app) *cobra.Command {
	cmd := resourceCmd("trips", "Manage displacements",
		func(ctx context.Context) error { return a.console.Displacements(ctx) },
		func(ctx context.Context, ids []int64) error { return a.console.DeleteDisplacements(ctx, ids) },
	)
	cmd.AddCommand(newStartCmd(a), newCloseCmd(a), newExportCmd(a))
	return cmd
}

// textFlags binds string flags to trip form fields. Only flags the operator
// set are copied into the input.
type textFlags map[string]*string

func (t textFlags) fields(cmd *cobra.Command, names map[string]string) map[string]string {
	out := map[string]string{}
	for flag, field := range names {
		if cmd.Flags().Changed(flag) {
			out[field] = *t[flag]
		}
	}
	return out
}

func newStartCmd(a *app) *cobra.Command {
	names := map[string]string{
		"km-inicial": tripform.FieldStartOdometer,
		"inicio":     tripform.FieldStartTime,
		"checklist":  tripform.FieldChecklist,
		"motivo":     tripform.FieldReason,
		"observacao": tripform.FieldNotes,
	}
	refs := map[string]string{
		"cliente":  tripform.FieldClient,
		"condutor": tripform.FieldConductor,
		"veiculo":  tripform.FieldVehicle,
	}
	text := textFlags{}
	ids := map[string]*int64{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a displacement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := console.TripInput{
				Fields:     text.fields(cmd, names),
				References: map[string]int64{},
			}
			for flag, field := range refs {
				if cmd.Flags().Changed(flag) {
					in.References[field] = *ids[flag]
				}
			}
			return a.console.StartTrip(cmd.Context(), in)
		},
	}
	f := cmd.Flags()
	text["km-inicial"] = f.String("km-inicial", "", "starting odometer")
	text["inicio"] = f.String("inicio", "", "start time; the server's clock when empty")
	text["checklist"] = f.String("checklist", "", "checklist notes")
	text["motivo"] = f.String("motivo", "", "reason")
	text["observacao"] = f.String("observacao", "", "notes")
	ids["cliente"] = f.Int64("cliente", 0, "client id")
	ids["condutor"] = f.Int64("condutor", 0, "conductor id")
	ids["veiculo"] = f.Int64("veiculo", 0, "vehicle id")
	return cmd
}

func newCloseCmd(a *app) *cobra.Command {
	names := map[string]string{
		"km-final":   tripform.FieldEndOdometer,
		"fim":        tripform.FieldEndTime,
		"observacao": tripform.FieldNotes,
	}
	text := textFlags{}

	cmd := &cobra.Command{
		Use:   "close ID",
		Short: "Close an open displacement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", args[0])
			}
			return a.console.CloseTrip(cmd.Context(), id, console.TripInput{Fields: text.fields(cmd, names)})
		},
	}
	f := cmd.Flags()
	text["km-final"] = f.String("km-final", "", "closing odometer")
	text["fim"] = f.String("fim", "", "end time; the server's clock when empty")
	text["observacao"] = f.String("observacao", "", "notes; keeps the recorded notes when not set")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the displacements as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if out == "" {
				out = "deslocamentos." + format
			}
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := file.Close(); err == nil {
					err = cerr
				}
			}()
			if err := a.console.Export(cmd.Context(), format, file); err != nil {
				_ = os.Remove(out)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default deslocamentos.<format>)")
	return cmd
}
