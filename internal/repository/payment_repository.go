package repository

import (
	"wholesale_manager/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderID(orderID uint) (*models.Payment, error)
	GetAll(opts ListOptions) ([]models.Payment, error)
	Update(payment *models.Payment) error
	Delete(id uint) error
	DeleteByOrderID(orderID uint) error
	SumAmount() (float64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByOrderID(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("order_id = ?", orderID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetAll(opts ListOptions) ([]models.Payment, error) {
	var payments []models.Payment
	err := applyListOptions(r.db, opts, "payment_mode").Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

// DeleteByOrderID discards the tentative payment of an in-flight order.
// The delete is unscoped: a soft-deleted row would keep its order_id and
// collide with the unique index when payment is captured again.
func (r *paymentRepository) DeleteByOrderID(orderID uint) error {
	return r.db.Unscoped().Where("order_id = ?", orderID).Delete(&models.Payment{}).Error
}

func (r *paymentRepository) SumAmount() (float64, error) {
	var total *float64
	err := r.db.Model(&models.Payment{}).Select("SUM(amount)").Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
