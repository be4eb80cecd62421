package services

import (
	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"
)

// Summary is the KPI block at the top of the dashboard.
type Summary struct {
	Customers     int64   `json:"customers"`
	Suppliers     int64   `json:"suppliers"`
	Products      int64   `json:"products"`
	Employees     int64   `json:"employees"`
	Orders        int64   `json:"orders"`
	Revenue       float64 `json:"revenue"`
	PendingOrders int64   `json:"pending_orders"`
}

type DashboardService interface {
	Summary() (*Summary, error)
	TopProducts(limit int) ([]repository.ProductQuantityRow, error)
	TransportStatusSplit() ([]repository.StatusCountRow, error)
	RecentOrders(limit int) ([]repository.RecentOrderRow, error)
}

type dashboardService struct {
	customerRepo  repository.CustomerRepository
	supplierRepo  repository.SupplierRepository
	productRepo   repository.ProductRepository
	employeeRepo  repository.EmployeeRepository
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	paymentRepo   repository.PaymentRepository
	transportRepo repository.TransportRepository
}

func NewDashboardService(
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	paymentRepo repository.PaymentRepository,
	transportRepo repository.TransportRepository,
) DashboardService {
	return &dashboardService{
		customerRepo:  customerRepo,
		supplierRepo:  supplierRepo,
		productRepo:   productRepo,
		employeeRepo:  employeeRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		transportRepo: transportRepo,
	}
}

func (s *dashboardService) Summary() (*Summary, error) {
	summary := &Summary{}
	var err error

	if summary.Customers, err = s.customerRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Suppliers, err = s.supplierRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Products, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Employees, err = s.employeeRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Orders, err = s.orderRepo.Count(); err != nil {
		return nil, err
	}
	if summary.Revenue, err = s.paymentRepo.SumAmount(); err != nil {
		return nil, err
	}
	if summary.PendingOrders, err = s.orderRepo.CountByStatusNot(models.OrderConfirmed); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *dashboardService) TopProducts(limit int) ([]repository.ProductQuantityRow, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.orderItemRepo.TopProducts(limit)
}

func (s *dashboardService) TransportStatusSplit() ([]repository.StatusCountRow, error) {
	return s.transportRepo.StatusCounts()
}

func (s *dashboardService) RecentOrders(limit int) ([]repository.RecentOrderRow, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.orderRepo.Recent(limit)
}
