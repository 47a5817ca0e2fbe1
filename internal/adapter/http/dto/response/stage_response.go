package response

import "taller_andino/internal/domain/entities"

type StageResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Color    string `json:"color"`
	Terminal bool   `json:"terminal"`
}

func FromStage(s entities.OrderStage) StageResponse {
	return StageResponse{
		ID:       s.ID,
		Name:     s.Name,
		Position: s.Position,
		Color:    s.Color,
		Terminal: s.Terminal(),
	}
}

func FromStages(stages []entities.OrderStage) []StageResponse {
	out := make([]StageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, FromStage(s))
	}
	return out
}
