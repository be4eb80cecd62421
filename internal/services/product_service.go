package services

import (
	"errors"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

type ProductService interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	GetAll(opts repository.ListOptions) ([]models.Product, error)
	GetInStock() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func validateProduct(product *models.Product) error {
	if product.Name == "" {
		return errors.New("product name is required")
	}
	if product.UnitPrice < 0 {
		return errors.New("unit price cannot be negative")
	}
	if product.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return nil
}

func (s *productService) Create(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Create(product)
}

func (s *productService) GetByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

func (s *productService) GetAll(opts repository.ListOptions) ([]models.Product, error) {
	return s.productRepo.GetAll(opts)
}

func (s *productService) GetInStock() ([]models.Product, error) {
	return s.productRepo.GetInStock()
}

func (s *productService) Update(product *models.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

func (s *productService) Delete(id uint) error {
	return s.productRepo.Delete(id)
}
