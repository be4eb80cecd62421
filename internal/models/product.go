package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `json:"id" csv:"-" gorm:"primaryKey;column:product_id"`
	Name          string         `json:"name" csv:"name" gorm:"not null"`
	Category      string         `json:"category" csv:"category"`
	UnitPrice     float64        `json:"unit_price" csv:"unit_price" gorm:"not null"`
	StockQuantity int            `json:"stock_quantity" csv:"stock_quantity" gorm:"not null;default:0"`
	SupplierID    *uint          `json:"supplier_id" csv:"supplier_id"`
	CreatedAt     time.Time      `json:"created_at" csv:"-"`
	UpdatedAt     time.Time      `json:"updated_at" csv:"-"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" csv:"-" gorm:"index"`
}
