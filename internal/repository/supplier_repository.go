package repository

import (
	"wholesale_manager/internal/models"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *models.Supplier) error
	CreateBatch(suppliers []models.Supplier) error
	GetByID(id uint) (*models.Supplier, error)
	GetAll(opts ListOptions) ([]models.Supplier, error)
	Update(supplier *models.Supplier) error
	Delete(id uint) error
	Count() (int64, error)
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepository) CreateBatch(suppliers []models.Supplier) error {
	return r.db.Create(&suppliers).Error
}

func (r *supplierRepository) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.First(&supplier, id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) GetAll(opts ListOptions) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := applyListOptions(r.db, opts, "name", "company_name", "city").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepository) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepository) Delete(id uint) error {
	return r.db.Delete(&models.Supplier{}, id).Error
}

func (r *supplierRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Supplier{}).Count(&count).Error
	return count, err
}
