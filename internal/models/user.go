package models

import (
	"time"

	"gorm.io/gorm"
)

type UserType int

const (
	UserTypeAdmin  UserType = 1
	UserTypeClient UserType = 2
)

func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeClient
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string   `gorm:"size:255;not null" json:"name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Type         UserType `gorm:"not null;default:2" json:"type"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
