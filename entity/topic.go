package entity

// Topic names are free text and carry no unique index. Get-or-create at the
// call sites is a plain find-then-insert, so concurrent identical requests
// can leave duplicate rows behind.
type Topic struct {
	BaseEntity
	Name string `json:"name" gorm:"type:varchar(200)"`

	Rooms []Room `json:"-" gorm:"foreignKey:TopicID"`
}
