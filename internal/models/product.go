package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a course listed in the catalog
type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name        string   `gorm:"type:varchar(255)" json:"name"`
	Price       string   `gorm:"type:varchar(20)" json:"price"` // display price, e.g. "$29.99"
	Description string   `gorm:"type:text" json:"description"`
	Details     []string `gorm:"serializer:json" json:"details"`
}
