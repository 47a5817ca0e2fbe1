package interfaces

import (
	"context"

	"taller_andino/internal/domain/entities"
)

// IOrderStageRepository abstracts the ordered, read-mostly stage catalog.
//
// The repository resolves each stage's kind (active/terminal) at load time;
// callers only ever look at OrderStage.Kind.

type IOrderStageRepository interface {
	GetByID(ctx context.Context, id string) (entities.OrderStage, error)
	// List returns the catalog sorted by position.
	List(ctx context.Context) ([]entities.OrderStage, error)
	// EnsureDefaults seeds the default workflow when the catalog is empty and
	// returns the catalog sorted by position.
	EnsureDefaults(ctx context.Context) ([]entities.OrderStage, error)
}
