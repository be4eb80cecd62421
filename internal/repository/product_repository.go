package repository

import (
	"wholesale_manager/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	CreateBatch(products []models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetAll(opts ListOptions) ([]models.Product, error)
	GetInStock() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) CreateBatch(products []models.Product) error {
	return r.db.Create(&products).Error
}

func (r *productRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetAll(opts ListOptions) ([]models.Product, error) {
	var products []models.Product
	err := applyListOptions(r.db, opts, "name", "category").Find(&products).Error
	return products, err
}

func (r *productRepository) GetInStock() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("stock_quantity > 0").Order("name").Find(&products).Error
	return products, err
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}
