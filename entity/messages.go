package entity

// Message is owned by exactly one room and one user. Deleting the room
// deletes its messages; a message never outlives either side.
type Message struct {
	BaseEntity
	RoomID uint   `json:"room" gorm:"not null;index"`
	UserID uint   `json:"user" gorm:"not null;index"`
	Body   string `json:"body" gorm:"type:text"`

	Room Room `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
