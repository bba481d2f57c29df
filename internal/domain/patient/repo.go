package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	// Search matches the query as a case-insensitive substring of full
	// name, CPF or phone. A row matching more than one field is still
	// returned once. Ordering is store-defined.
	Search(ctx context.Context, query string, limit int) ([]*Summary, error)
}
