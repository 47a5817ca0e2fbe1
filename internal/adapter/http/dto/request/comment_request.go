package request

// CommentRequest appends a manual note to an order's audit trail.
type CommentRequest struct {
	Actor string `json:"actor" binding:"required"`
	Text  string `json:"text" binding:"required"`
}
