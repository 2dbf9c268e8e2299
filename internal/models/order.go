package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1
	OrderStatusConfirmed OrderStatus = 2
	OrderStatusCanceled  OrderStatus = 3
)

func (s OrderStatus) Valid() bool {
	return s >= OrderStatusPending && s <= OrderStatusCanceled
}

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Status OrderStatus `gorm:"not null;default:1" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
