package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID          uint           `json:"id" csv:"-" gorm:"primaryKey;column:order_id"`
	CustomerID  uint           `json:"customer_id" csv:"customer_id" gorm:"not null"`
	EmployeeID  uint           `json:"employee_id" csv:"employee_id" gorm:"not null"`
	OrderDate   time.Time      `json:"order_date" csv:"order_date" gorm:"not null"`
	Status      string         `json:"status" csv:"status" gorm:"default:'Draft'"` // Draft, Confirmed, Cancelled
	TotalAmount float64        `json:"total_amount" csv:"total_amount"`
	CreatedAt   time.Time      `json:"created_at" csv:"-"`
	UpdatedAt   time.Time      `json:"updated_at" csv:"-"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" csv:"-" gorm:"index"`
}

type OrderStatus string

const (
	OrderDraft     OrderStatus = "Draft"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderCancelled OrderStatus = "Cancelled"
)
