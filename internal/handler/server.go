// Package handler implements the HTTP handlers for the dispatch API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, displacement.go,
// etc.) but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/handler/gen"
)

// DisplacementServicer defines the business operations the displacement
// handlers depend on. Defining the interface here (in the consumer package)
// lets handler tests inject a mock without touching the database.
type DisplacementServicer interface {
	Start(ctx context.Context, d domain.Displacement) (domain.Displacement, error)
	Close(ctx context.Context, c domain.Closing) (domain.Displacement, error)
	GetByID(ctx context.Context, id int64) (domain.Displacement, error)
	List(ctx context.Context) ([]domain.Displacement, error)
	Delete(ctx context.Context, id int64) error
}

// ReferenceServicer defines the operations shared by clients, conductors and
// vehicles.
type ReferenceServicer[T any] interface {
	Create(ctx context.Context, v T) (T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id int64) error
}

// ExportServicer defines the export operation.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.Handler(handler.NewStrictHandler(server)).
type Server struct {
	displacements DisplacementServicer
	clients       ReferenceServicer[domain.Client]
	conductors    ReferenceServicer[domain.Conductor]
	vehicles      ReferenceServicer[domain.Vehicle]
	export        ExportServicer
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// Nil dependencies are allowed in tests that only hit other endpoints.
func NewServer(
	displacements DisplacementServicer,
	clients ReferenceServicer[domain.Client],
	conductors ReferenceServicer[domain.Conductor],
	vehicles ReferenceServicer[domain.Vehicle],
	export ExportServicer,
) *Server {
	return &Server{
		displacements: displacements,
		clients:       clients,
		conductors:    conductors,
		vehicles:      vehicles,
		export:        export,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}
