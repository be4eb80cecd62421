package services

import (
	"errors"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

type PaymentService interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderID(orderID uint) (*models.Payment, error)
	GetAll(opts repository.ListOptions) ([]models.Payment, error)
	Update(payment *models.Payment) error
	Delete(id uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func validatePayment(payment *models.Payment) error {
	if payment.OrderID == 0 {
		return errors.New("order reference is required")
	}
	if payment.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	if !models.ValidPaymentMode(payment.PaymentMode) {
		return errors.New("unknown payment mode")
	}
	return nil
}

func (s *paymentService) Create(payment *models.Payment) error {
	if err := validatePayment(payment); err != nil {
		return err
	}
	return s.paymentRepo.Create(payment)
}

func (s *paymentService) GetByID(id uint) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

func (s *paymentService) GetByOrderID(orderID uint) (*models.Payment, error) {
	return s.paymentRepo.GetByOrderID(orderID)
}

func (s *paymentService) GetAll(opts repository.ListOptions) ([]models.Payment, error) {
	return s.paymentRepo.GetAll(opts)
}

func (s *paymentService) Update(payment *models.Payment) error {
	if err := validatePayment(payment); err != nil {
		return err
	}
	return s.paymentRepo.Update(payment)
}

func (s *paymentService) Delete(id uint) error {
	return s.paymentRepo.Delete(id)
}
