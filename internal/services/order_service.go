package services

import (
	"errors"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

// ErrOrderImmutable is returned when a confirmed order is mutated through the
// CRUD surface. Confirmed orders only accept a status transition to Cancelled.
var ErrOrderImmutable = errors.New("confirmed orders cannot be modified")

type OrderService interface {
	GetByID(id uint) (*models.Order, error)
	GetAll(opts repository.ListOptions) ([]models.Order, error)
	GetItems(orderID uint) ([]models.OrderItem, error)
	Update(order *models.Order) error
	Cancel(id uint) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
}

func NewOrderService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository) OrderService {
	return &orderService{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

func (s *orderService) GetByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAll(opts repository.ListOptions) ([]models.Order, error) {
	return s.orderRepo.GetAll(opts)
}

func (s *orderService) GetItems(orderID uint) ([]models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(orderID)
}

func (s *orderService) Update(order *models.Order) error {
	existing, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return err
	}
	if existing.Status == string(models.OrderConfirmed) {
		return ErrOrderImmutable
	}
	return s.orderRepo.Update(order)
}

// Cancel discards a draft order entirely; a confirmed order keeps its history
// and only flips status.
func (s *orderService) Cancel(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	switch order.Status {
	case string(models.OrderCancelled):
		return errors.New("order is already cancelled")
	case string(models.OrderConfirmed):
		return s.orderRepo.UpdateStatus(id, models.OrderCancelled)
	default:
		return s.orderRepo.DeleteDraft(id)
	}
}
