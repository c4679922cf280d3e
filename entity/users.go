package entity

type User struct {
	BaseEntity
	Username string `json:"username" gorm:"unique;type:varchar(150)"`
	Email    string `json:"email" gorm:"type:varchar(254)"`
	Password string `json:"-" gorm:"type:varchar(255)"`

	Rooms    []Room    `json:"-" gorm:"foreignKey:HostID"`
	Messages []Message `json:"-" gorm:"foreignKey:UserID"`
}
