package req

type MessageRequest struct {
	Body string `form:"body" json:"body" validate:"required"`
}
