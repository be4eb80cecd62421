package services

import (
	"errors"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

type TransportService interface {
	Create(transport *models.Transportation) error
	GetByID(id uint) (*models.Transportation, error)
	GetByOrderID(orderID uint) (*models.Transportation, error)
	GetAll(opts repository.ListOptions) ([]models.Transportation, error)
	Update(transport *models.Transportation) error
	Delete(id uint) error
}

type transportService struct {
	transportRepo repository.TransportRepository
}

func NewTransportService(transportRepo repository.TransportRepository) TransportService {
	return &transportService{transportRepo: transportRepo}
}

func validateTransport(transport *models.Transportation) error {
	if transport.OrderID == 0 {
		return errors.New("order reference is required")
	}
	if transport.VehicleNumber == "" || transport.DriverName == "" {
		return errors.New("vehicle number and driver name are required")
	}
	if !models.ValidTransportMode(transport.TransportMode) {
		return errors.New("unknown transport mode")
	}
	return nil
}

func (s *transportService) Create(transport *models.Transportation) error {
	if err := validateTransport(transport); err != nil {
		return err
	}
	return s.transportRepo.Create(transport)
}

func (s *transportService) GetByID(id uint) (*models.Transportation, error) {
	return s.transportRepo.GetByID(id)
}

func (s *transportService) GetByOrderID(orderID uint) (*models.Transportation, error) {
	return s.transportRepo.GetByOrderID(orderID)
}

func (s *transportService) GetAll(opts repository.ListOptions) ([]models.Transportation, error) {
	return s.transportRepo.GetAll(opts)
}

func (s *transportService) Update(transport *models.Transportation) error {
	if err := validateTransport(transport); err != nil {
		return err
	}
	return s.transportRepo.Update(transport)
}

func (s *transportService) Delete(id uint) error {
	return s.transportRepo.Delete(id)
}
