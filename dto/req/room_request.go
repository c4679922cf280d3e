package req

// RoomRequest backs both room creation and room update. Topic carries the
// topic name, which is resolved with get-or-create semantics.
type RoomRequest struct {
	Topic       string `form:"topic" json:"topic" validate:"required"`
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description"`
}
