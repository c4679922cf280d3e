package res

// RoomResponse is the read-only API projection of a room. Host and Topic
// carry the related identifiers and stay null when the reference was
// cleared by a deletion.
type RoomResponse struct {
	ID           uint   `json:"id"`
	Host         *uint  `json:"host"`
	Topic        *uint  `json:"topic"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Participants []uint `json:"participants"`
	Updated      string `json:"updated"`
	Created      string `json:"created"`
}
