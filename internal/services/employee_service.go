package services

import (
	"errors"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

type EmployeeService interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetAll(opts repository.ListOptions) ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uint) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) Create(employee *models.Employee) error {
	if employee.Name == "" {
		return errors.New("employee name is required")
	}
	if employee.Salary < 0 {
		return errors.New("salary cannot be negative")
	}
	return s.employeeRepo.Create(employee)
}

func (s *employeeService) GetByID(id uint) (*models.Employee, error) {
	return s.employeeRepo.GetByID(id)
}

func (s *employeeService) GetAll(opts repository.ListOptions) ([]models.Employee, error) {
	return s.employeeRepo.GetAll(opts)
}

func (s *employeeService) Update(employee *models.Employee) error {
	if employee.Name == "" {
		return errors.New("employee name is required")
	}
	return s.employeeRepo.Update(employee)
}

func (s *employeeService) Delete(id uint) error {
	return s.employeeRepo.Delete(id)
}
