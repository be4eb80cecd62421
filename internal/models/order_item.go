package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem snapshots the unit price at add-time; it is never re-read
// from the product after the line enters the cart.
type OrderItem struct {
	ID        uint           `json:"id" csv:"-" gorm:"primaryKey;column:order_item_id"`
	OrderID   uint           `json:"order_id" csv:"order_id" gorm:"not null;index"`
	ProductID uint           `json:"product_id" csv:"product_id" gorm:"not null"`
	Quantity  int            `json:"quantity" csv:"quantity" gorm:"not null"`
	UnitPrice float64        `json:"unit_price" csv:"unit_price" gorm:"not null"`
	LineTotal float64        `json:"line_total" csv:"line_total" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at" csv:"-"`
	UpdatedAt time.Time      `json:"updated_at" csv:"-"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" csv:"-" gorm:"index"`
}
