package models

import (
	"time"

	"gorm.io/gorm"
)

type Supplier struct {
	ID          uint           `json:"id" csv:"-" gorm:"primaryKey;column:supplier_id"`
	Name        string         `json:"name" csv:"name" gorm:"not null"`
	CompanyName string         `json:"company_name" csv:"company_name"`
	Phone       string         `json:"phone" csv:"phone"`
	Email       string         `json:"email" csv:"email"`
	Address     string         `json:"address" csv:"address"`
	City        string         `json:"city" csv:"city"`
	State       string         `json:"state" csv:"state"`
	Pincode     string         `json:"pincode" csv:"pincode"`
	CreatedAt   time.Time      `json:"created_at" csv:"-"`
	UpdatedAt   time.Time      `json:"updated_at" csv:"-"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" csv:"-" gorm:"index"`
}
