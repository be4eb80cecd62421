package models

import (
	"time"

	"gorm.io/gorm"
)

type Transportation struct {
	ID            uint           `json:"id" csv:"-" gorm:"primaryKey;column:transport_id"`
	OrderID       uint           `json:"order_id" csv:"order_id" gorm:"not null;uniqueIndex"`
	VehicleNumber string         `json:"vehicle_number" csv:"vehicle_number" gorm:"not null"`
	DriverName    string         `json:"driver_name" csv:"driver_name" gorm:"not null"`
	TransportMode string         `json:"transport_mode" csv:"transport_mode"` // Truck, Van, Mini Truck, Tempo
	DepartureDate time.Time      `json:"departure_date" csv:"departure_date"`
	ArrivalDate   time.Time      `json:"arrival_date" csv:"arrival_date"`
	Status        string         `json:"status" csv:"status" gorm:"default:'In Transit'"` // In Transit, Delivered, Delayed
	CreatedAt     time.Time      `json:"created_at" csv:"-"`
	UpdatedAt     time.Time      `json:"updated_at" csv:"-"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" csv:"-" gorm:"index"`
}

// TransportModes lists the accepted vehicle classes.
var TransportModes = []string{"Truck", "Van", "Mini Truck", "Tempo"}

func ValidTransportMode(mode string) bool {
	for _, m := range TransportModes {
		if m == mode {
			return true
		}
	}
	return false
}
