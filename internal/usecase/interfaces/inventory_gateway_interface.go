package interfaces

import "context"

// MovementType classifies a stock movement logged in the inventory subsystem.

type MovementType string

const (
	MovementTypeOut MovementType = "out"
	MovementTypeIn  MovementType = "in"
)

// IInventoryGateway is the collaborator boundary toward the external
// inventory subsystem. Stock calls are independent of the engine's own
// persistence writes; there is no two-phase commit between them.

type IInventoryGateway interface {
	DecrementStock(ctx context.Context, inventoryID string, qty int) error
	IncrementStock(ctx context.Context, inventoryID string, qty int) error
	RecordMovement(ctx context.Context, inventoryID string, movementType MovementType, qty int, notes string) error
}
