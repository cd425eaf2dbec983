package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name      string    `gorm:"not null;unique" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
