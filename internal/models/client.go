package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is the purchasing profile attached to a User account.
type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Phone      string     `gorm:"size:15;not null" json:"phone"`
	BirthDate  *time.Time `json:"birth_date"`
	Address    string     `gorm:"size:255;not null" json:"address"`
	Complement string     `gorm:"size:255" json:"complement"`
	District   string     `gorm:"size:255;not null" json:"district"`
	Zipcode    string     `gorm:"size:20;not null" json:"zipcode"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
