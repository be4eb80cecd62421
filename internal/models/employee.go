package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID        uint           `json:"id" csv:"-" gorm:"primaryKey;column:employee_id"`
	Name      string         `json:"name" csv:"name" gorm:"not null"`
	Role      string         `json:"role" csv:"role"`
	Phone     string         `json:"phone" csv:"phone"`
	Email     string         `json:"email" csv:"email"`
	Salary    float64        `json:"salary" csv:"salary"`
	CreatedAt time.Time      `json:"created_at" csv:"-"`
	UpdatedAt time.Time      `json:"updated_at" csv:"-"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" csv:"-" gorm:"index"`
}
