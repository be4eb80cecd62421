package services

import (
	"errors"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

type CustomerService interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetAll(opts repository.ListOptions) ([]models.Customer, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.New("customer name is required")
	}
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetByID(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) GetAll(opts repository.ListOptions) ([]models.Customer, error) {
	return s.customerRepo.GetAll(opts)
}

func (s *customerService) Update(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.New("customer name is required")
	}
	return s.customerRepo.Update(customer)
}

func (s *customerService) Delete(id uint) error {
	return s.customerRepo.Delete(id)
}
