package services

import (
	"errors"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

type SupplierService interface {
	Create(supplier *models.Supplier) error
	GetByID(id uint) (*models.Supplier, error)
	GetAll(opts repository.ListOptions) ([]models.Supplier, error)
	Update(supplier *models.Supplier) error
	Delete(id uint) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) Create(supplier *models.Supplier) error {
	if supplier.Name == "" {
		return errors.New("supplier name is required")
	}
	return s.supplierRepo.Create(supplier)
}

func (s *supplierService) GetByID(id uint) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(id)
}

func (s *supplierService) GetAll(opts repository.ListOptions) ([]models.Supplier, error) {
	return s.supplierRepo.GetAll(opts)
}

func (s *supplierService) Update(supplier *models.Supplier) error {
	if supplier.Name == "" {
		return errors.New("supplier name is required")
	}
	return s.supplierRepo.Update(supplier)
}

func (s *supplierService) Delete(id uint) error {
	return s.supplierRepo.Delete(id)
}
