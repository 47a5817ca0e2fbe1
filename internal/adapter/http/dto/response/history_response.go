package response

import (
	"time"

	"taller_andino/internal/domain/entities"
)

type HistoryEventResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Actor       string    `json:"actor"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromHistoryEvent(e entities.OrderHistoryEvent) HistoryEventResponse {
	return HistoryEventResponse{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Actor:       e.Actor,
		Type:        string(e.Type),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func FromHistoryEvents(events []entities.OrderHistoryEvent) []HistoryEventResponse {
	out := make([]HistoryEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromHistoryEvent(e))
	}
	return out
}
