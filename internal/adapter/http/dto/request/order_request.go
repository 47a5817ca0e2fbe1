package request

import "strings"

// CreateOrderRequest registers a device entering the workshop.
type CreateOrderRequest struct {
	ClientID   string  `json:"client_id" binding:"required"`
	Device     string  `json:"device" binding:"required"`
	Prepayment float64 `json:"prepayment"`
}

// StageChangeRequest moves an order to another catalog stage. PaymentMethod
// is required only when the target stage is the terminal one; the engine
// never prompts for it.
type StageChangeRequest struct {
	StageID       string `json:"stage_id" binding:"required"`
	Actor         string `json:"actor"`
	PaymentMethod string `json:"payment_method"`
}

func (r StageChangeRequest) ResolveStageID() string {
	return strings.TrimSpace(r.StageID)
}

// PrepaymentRequest records the amount collected before completion.
type PrepaymentRequest struct {
	Amount float64 `json:"amount"`
}
