package services

import (
	"testing"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	customerRepo := new(mockCustomerRepo)
	supplierRepo := new(mockSupplierRepo)
	productRepo := new(mockProductRepo)
	employeeRepo := new(mockEmployeeRepo)
	orderRepo := new(mockOrderRepo)
	paymentRepo := new(mockPaymentRepo)
	svc := NewDashboardService(
		customerRepo, supplierRepo, productRepo, employeeRepo,
		orderRepo, new(mockOrderItemRepo), paymentRepo, new(mockTransportRepo),
	)

	customerRepo.On("Count").Return(int64(12), nil)
	supplierRepo.On("Count").Return(int64(4), nil)
	productRepo.On("Count").Return(int64(80), nil)
	employeeRepo.On("Count").Return(int64(6), nil)
	orderRepo.On("Count").Return(int64(31), nil)
	paymentRepo.On("SumAmount").Return(45200.50, nil)
	orderRepo.On("CountByStatusNot", models.OrderConfirmed).Return(int64(3), nil)

	summary, err := svc.Summary()
	require.NoError(t, err)

	assert.Equal(t, int64(12), summary.Customers)
	assert.Equal(t, int64(31), summary.Orders)
	assert.Equal(t, 45200.50, summary.Revenue)
	assert.Equal(t, int64(3), summary.PendingOrders)
}

func TestDashboardTopProductsDefaultsLimit(t *testing.T) {
	orderItemRepo := new(mockOrderItemRepo)
	svc := NewDashboardService(
		new(mockCustomerRepo), new(mockSupplierRepo), new(mockProductRepo), new(mockEmployeeRepo),
		new(mockOrderRepo), orderItemRepo, new(mockPaymentRepo), new(mockTransportRepo),
	)

	orderItemRepo.On("TopProducts", 10).Return([]repository.ProductQuantityRow{
		{ProductName: "Rice Bag 25kg", TotalQty: 340},
	}, nil)

	rows, err := svc.TopProducts(0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Rice Bag 25kg", rows[0].ProductName)
}

func TestDashboardRecentOrdersDefaultsLimit(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	svc := NewDashboardService(
		new(mockCustomerRepo), new(mockSupplierRepo), new(mockProductRepo), new(mockEmployeeRepo),
		orderRepo, new(mockOrderItemRepo), new(mockPaymentRepo), new(mockTransportRepo),
	)

	orderRepo.On("Recent", 20).Return([]repository.RecentOrderRow{}, nil)

	_, err := svc.RecentOrders(-1)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}
