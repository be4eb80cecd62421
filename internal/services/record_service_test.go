package services

import (
	"testing"

	"wholesale_manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductValidation(t *testing.T) {
	productRepo := new(mockProductRepo)
	svc := NewProductService(productRepo)

	assert.Error(t, svc.Create(&models.Product{UnitPrice: 10}))
	assert.Error(t, svc.Create(&models.Product{Name: "Rice Bag 25kg", UnitPrice: -1}))
	assert.Error(t, svc.Create(&models.Product{Name: "Rice Bag 25kg", UnitPrice: 10, StockQuantity: -5}))
	productRepo.AssertNotCalled(t, "Create", mock.Anything)

	productRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil)
	require.NoError(t, svc.Create(&models.Product{Name: "Rice Bag 25kg", UnitPrice: 10}))
	productRepo.AssertExpectations(t)
}

func TestCustomerNameRequired(t *testing.T) {
	customerRepo := new(mockCustomerRepo)
	svc := NewCustomerService(customerRepo)

	assert.Error(t, svc.Create(&models.Customer{ShopName: "No Name Shop"}))
	assert.Error(t, svc.Update(&models.Customer{ID: 1}))
	customerRepo.AssertNotCalled(t, "Create", mock.Anything)
	customerRepo.AssertNotCalled(t, "Update", mock.Anything)

	customerRepo.On("Create", mock.AnythingOfType("*models.Customer")).Return(nil)
	require.NoError(t, svc.Create(&models.Customer{Name: "Sharma Traders"}))
}

func TestEmployeeSalaryNonNegative(t *testing.T) {
	employeeRepo := new(mockEmployeeRepo)
	svc := NewEmployeeService(employeeRepo)

	assert.Error(t, svc.Create(&models.Employee{Name: "Priya", Salary: -100}))
	employeeRepo.AssertNotCalled(t, "Create", mock.Anything)

	employeeRepo.On("Create", mock.AnythingOfType("*models.Employee")).Return(nil)
	require.NoError(t, svc.Create(&models.Employee{Name: "Priya", Salary: 25000}))
}
