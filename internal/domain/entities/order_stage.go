package entities

// StageKind tags a catalog stage as a normal workflow step or the terminal
// "closed" state. The kind is decided once, when the catalog row is loaded,
// so stage comparisons elsewhere never touch the stage name.

type StageKind string

const (
	StageKindActive   StageKind = "active"
	StageKindTerminal StageKind = "terminal"
)

// TerminalStageName is the fixed label that marks the terminal stage in the
// catalog. ResolveStageKind is the single point of comparison against it.
const TerminalStageName = "Cerrado"

// ResolveStageKind maps a catalog stage name to its kind.
func ResolveStageKind(name string) StageKind {
	if name == TerminalStageName {
		return StageKindTerminal
	}
	return StageKindActive
}

// OrderStage is an ordered catalog entry in the repair workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - The catalog is tiny and read-mostly; listing scans the table and sorts
//     by position.

type OrderStage struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Position int       `json:"position"`
	Color    string    `json:"color"`
	Kind     StageKind `json:"kind"`
}

// Terminal reports whether the stage is the closed state.
func (s OrderStage) Terminal() bool {
	return s.Kind == StageKindTerminal
}
