package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID          uint           `json:"id" csv:"-" gorm:"primaryKey;column:payment_id"`
	OrderID     uint           `json:"order_id" csv:"order_id" gorm:"not null;uniqueIndex"`
	PaymentDate time.Time      `json:"payment_date" csv:"payment_date"`
	Amount      float64        `json:"amount" csv:"amount" gorm:"not null"`
	PaymentMode string         `json:"payment_mode" csv:"payment_mode"` // Cash, UPI, Online Transfer, Cheque
	Status      string         `json:"status" csv:"status" gorm:"default:'Paid'"`
	CreatedAt   time.Time      `json:"created_at" csv:"-"`
	UpdatedAt   time.Time      `json:"updated_at" csv:"-"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" csv:"-" gorm:"index"`
}

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// PaymentModes lists the accepted payment methods.
var PaymentModes = []string{"Cash", "UPI", "Online Transfer", "Cheque"}

func ValidPaymentMode(mode string) bool {
	for _, m := range PaymentModes {
		if m == mode {
			return true
		}
	}
	return false
}
