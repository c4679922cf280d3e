package entity

// Room survives the deletion of its host or topic: both references are
// nulled out instead of cascading. Participants grow when a user posts in
// the room and never shrink automatically.
type Room struct {
	BaseEntity
	HostID      *uint  `json:"host" gorm:"index"`
	TopicID     *uint  `json:"topic" gorm:"index"`
	Name        string `json:"name" gorm:"type:varchar(200)"`
	Description string `json:"description" gorm:"type:text"`

	Host         *User     `json:"-" gorm:"foreignKey:HostID;constraint:OnDelete:SET NULL"`
	Topic        *Topic    `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:SET NULL"`
	Participants []User    `json:"-" gorm:"many2many:room_participants"`
	Messages     []Message `json:"-" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}
