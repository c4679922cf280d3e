package entity

import (
	"time"
)

// BaseEntity carries the identity and bookkeeping columns shared by every
// table. CreatedAt is written once on first save, UpdatedAt on every save.
type BaseEntity struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UpdatedAt time.Time `json:"updated" gorm:"autoUpdateTime"`
	CreatedAt time.Time `json:"created" gorm:"autoCreateTime"`
}
