package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/diones-souza/test-snaty/internal/apitypes"
)

// resourceCmd builds the list and delete subcommands shared by every
// resource. create is added by the caller.
func resourceCmd(use, short string, list func(context.Context) error, del func(context.Context, []int64) error) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print the grid",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return list(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "delete ID...",
			Short: "Delete records by id",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				return del(cmd.Context(), ids)
			},
		},
	)
	return cmd
}

func newClientsCmd(a *app) *cobra.Command {
	cmd := resourceCmd("clients", "Manage clients",
		func(ctx context.Context) error { return a.console.Clients(ctx) },
		func(ctx context.Context, ids []int64) error { return a.console.DeleteClients(ctx, ids) },
	)

	var v apitypes.Client
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.console.CreateClient(cmd.Context(), v)
		},
	}
	f := create.Flags()
	f.StringVar(&v.Name, "nome", "", "name")
	f.StringVar(&v.DocumentNumber, "documento", "", "document number")
	f.StringVar(&v.DocumentType, "tipo-documento", "", "document type (CPF, CNPJ)")
	f.StringVar(&v.Street, "rua", "", "street")
	f.StringVar(&v.Number, "numero", "", "street number")
	f.StringVar(&v.District, "bairro", "", "district")
	f.StringVar(&v.City, "cidade", "", "city")
	f.StringVar(&v.State, "uf", "", "state")
	cmd.AddCommand(create)
	return cmd
}

func newConductorsCmd(a *app) *cobra.Command {
	cmd := resourceCmd("conductors", "Manage conductors",
		func(ctx context.Context) error { return a.console.Conductors(ctx) },
		func(ctx context.Context, ids []int64) error { return a.console.DeleteConductors(ctx, ids) },
	)

	var v apitypes.Conductor
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a conductor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.console.CreateConductor(cmd.Context(), v)
		},
	}
	f := create.Flags()
	f.StringVar(&v.Name, "nome", "", "name")
	f.StringVar(&v.LicenseNumber, "habilitacao", "", "license number")
	f.StringVar(&v.LicenseCategory, "categoria", "", "license category")
	f.StringVar(&v.LicenseExpiry, "vencimento", "", "license expiry date")
	cmd.AddCommand(create)
	return cmd
}

func newVehiclesCmd(a *app) *cobra.Command {
	cmd := resourceCmd("vehicles", "Manage vehicles",
		func(ctx context.Context) error { return a.console.Vehicles(ctx) },
		func(ctx context.Context, ids []int64) error { return a.console.DeleteVehicles(ctx, ids) },
	)

	var v apitypes.Vehicle
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a vehicle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.console.CreateVehicle(cmd.Context(), v)
		},
	}
	f := create.Flags()
	f.StringVar(&v.Plate, "placa", "", "licence plate")
	f.StringVar(&v.MakeModel, "marca-modelo", "", "make and model")
	f.IntVar(&v.Year, "ano", 0, "year of manufacture")
	f.Float64Var(&v.CurrentKm, "km", 0, "current odometer")
	cmd.AddCommand(create)
	return cmd
}
