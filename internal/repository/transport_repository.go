package repository

import (
	"wholesale_manager/internal/models"

	"gorm.io/gorm"
)

// StatusCountRow is a dashboard projection of record count per status.
type StatusCountRow struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TransportRepository interface {
	Create(transport *models.Transportation) error
	GetByID(id uint) (*models.Transportation, error)
	GetByOrderID(orderID uint) (*models.Transportation, error)
	GetAll(opts ListOptions) ([]models.Transportation, error)
	Update(transport *models.Transportation) error
	Delete(id uint) error
	StatusCounts() ([]StatusCountRow, error)
}

type transportRepository struct {
	db *gorm.DB
}

func NewTransportRepository(db *gorm.DB) TransportRepository {
	return &transportRepository{db: db}
}

func (r *transportRepository) Create(transport *models.Transportation) error {
	return r.db.Create(transport).Error
}

func (r *transportRepository) GetByID(id uint) (*models.Transportation, error) {
	var transport models.Transportation
	err := r.db.First(&transport, id).Error
	if err != nil {
		return nil, err
	}
	return &transport, nil
}

func (r *transportRepository) GetByOrderID(orderID uint) (*models.Transportation, error) {
	var transport models.Transportation
	err := r.db.Where("order_id = ?", orderID).First(&transport).Error
	if err != nil {
		return nil, err
	}
	return &transport, nil
}

func (r *transportRepository) GetAll(opts ListOptions) ([]models.Transportation, error) {
	var transports []models.Transportation
	err := applyListOptions(r.db, opts, "vehicle_number", "driver_name", "status").Find(&transports).Error
	return transports, err
}

func (r *transportRepository) Update(transport *models.Transportation) error {
	return r.db.Save(transport).Error
}

func (r *transportRepository) Delete(id uint) error {
	return r.db.Delete(&models.Transportation{}, id).Error
}

func (r *transportRepository) StatusCounts() ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := r.db.Model(&models.Transportation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}
