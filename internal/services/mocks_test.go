package services

import (
	"context"
	"encoding/json"
	"time"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/redis"
	"wholesale_manager/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(customer *models.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *mockCustomerRepo) CreateBatch(customers []models.Customer) error {
	return m.Called(customers).Error(0)
}

func (m *mockCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if c, ok := args.Get(0).(*models.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) GetAll(opts repository.ListOptions) ([]models.Customer, error) {
	args := m.Called(opts)
	if c, ok := args.Get(0).([]models.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) Update(customer *models.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *mockCustomerRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockCustomerRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockSupplierRepo struct {
	mock.Mock
}

func (m *mockSupplierRepo) Create(supplier *models.Supplier) error {
	return m.Called(supplier).Error(0)
}

func (m *mockSupplierRepo) CreateBatch(suppliers []models.Supplier) error {
	return m.Called(suppliers).Error(0)
}

func (m *mockSupplierRepo) GetByID(id uint) (*models.Supplier, error) {
	args := m.Called(id)
	if s, ok := args.Get(0).(*models.Supplier); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepo) GetAll(opts repository.ListOptions) ([]models.Supplier, error) {
	args := m.Called(opts)
	if s, ok := args.Get(0).([]models.Supplier); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepo) Update(supplier *models.Supplier) error {
	return m.Called(supplier).Error(0)
}

func (m *mockSupplierRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockSupplierRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepo) CreateBatch(products []models.Product) error {
	return m.Called(products).Error(0)
}

func (m *mockProductRepo) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if p, ok := args.Get(0).(*models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetAll(opts repository.ListOptions) ([]models.Product, error) {
	args := m.Called(opts)
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetInStock() ([]models.Product, error) {
	args := m.Called()
	if p, ok := args.Get(0).([]models.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockProductRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockEmployeeRepo struct {
	mock.Mock
}

func (m *mockEmployeeRepo) Create(employee *models.Employee) error {
	return m.Called(employee).Error(0)
}

func (m *mockEmployeeRepo) CreateBatch(employees []models.Employee) error {
	return m.Called(employees).Error(0)
}

func (m *mockEmployeeRepo) GetByID(id uint) (*models.Employee, error) {
	args := m.Called(id)
	if e, ok := args.Get(0).(*models.Employee); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepo) GetAll(opts repository.ListOptions) ([]models.Employee, error) {
	args := m.Called(opts)
	if e, ok := args.Get(0).([]models.Employee); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeRepo) Update(employee *models.Employee) error {
	return m.Called(employee).Error(0)
}

func (m *mockEmployeeRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockEmployeeRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(order *models.Order) error {
	return m.Called(order).Error(0)
}

func (m *mockOrderRepo) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if o, ok := args.Get(0).(*models.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) GetAll(opts repository.ListOptions) ([]models.Order, error) {
	args := m.Called(opts)
	if o, ok := args.Get(0).([]models.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Update(order *models.Order) error {
	return m.Called(order).Error(0)
}

func (m *mockOrderRepo) UpdateStatus(id uint, status models.OrderStatus) error {
	return m.Called(id, status).Error(0)
}

func (m *mockOrderRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) CountByStatusNot(status models.OrderStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) Recent(limit int) ([]repository.RecentOrderRow, error) {
	args := m.Called(limit)
	if r, ok := args.Get(0).([]repository.RecentOrderRow); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Confirm(orderID uint, items []models.OrderItem, transport *models.Transportation, total float64) error {
	return m.Called(orderID, items, transport, total).Error(0)
}

func (m *mockOrderRepo) DeleteDraft(orderID uint) error {
	return m.Called(orderID).Error(0)
}

type mockOrderItemRepo struct {
	mock.Mock
}

func (m *mockOrderItemRepo) GetByID(id uint) (*models.OrderItem, error) {
	args := m.Called(id)
	if o, ok := args.Get(0).(*models.OrderItem); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	args := m.Called(orderID)
	if o, ok := args.Get(0).([]models.OrderItem); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderItemRepo) GetAll(opts repository.ListOptions) ([]models.OrderItem, error) {
	args := m.Called(opts)
	if o, ok := args.Get(0).([]models.OrderItem); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderItemRepo) TopProducts(limit int) ([]repository.ProductQuantityRow, error) {
	args := m.Called(limit)
	if r, ok := args.Get(0).([]repository.ProductQuantityRow); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(payment *models.Payment) error {
	return m.Called(payment).Error(0)
}

func (m *mockPaymentRepo) GetByID(id uint) (*models.Payment, error) {
	args := m.Called(id)
	if p, ok := args.Get(0).(*models.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) GetByOrderID(orderID uint) (*models.Payment, error) {
	args := m.Called(orderID)
	if p, ok := args.Get(0).(*models.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) GetAll(opts repository.ListOptions) ([]models.Payment, error) {
	args := m.Called(opts)
	if p, ok := args.Get(0).([]models.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPaymentRepo) Update(payment *models.Payment) error {
	return m.Called(payment).Error(0)
}

func (m *mockPaymentRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockPaymentRepo) DeleteByOrderID(orderID uint) error {
	return m.Called(orderID).Error(0)
}

func (m *mockPaymentRepo) SumAmount() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

type mockTransportRepo struct {
	mock.Mock
}

func (m *mockTransportRepo) Create(transport *models.Transportation) error {
	return m.Called(transport).Error(0)
}

func (m *mockTransportRepo) GetByID(id uint) (*models.Transportation, error) {
	args := m.Called(id)
	if t, ok := args.Get(0).(*models.Transportation); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransportRepo) GetByOrderID(orderID uint) (*models.Transportation, error) {
	args := m.Called(orderID)
	if t, ok := args.Get(0).(*models.Transportation); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransportRepo) GetAll(opts repository.ListOptions) ([]models.Transportation, error) {
	args := m.Called(opts)
	if t, ok := args.Get(0).([]models.Transportation); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransportRepo) Update(transport *models.Transportation) error {
	return m.Called(transport).Error(0)
}

func (m *mockTransportRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockTransportRepo) StatusCounts() ([]repository.StatusCountRow, error) {
	args := m.Called()
	if r, ok := args.Get(0).([]repository.StatusCountRow); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetAll() ([]models.User, error) {
	args := m.Called()
	if u, ok := args.Get(0).([]models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

// fakeWizardStore is an in-memory WizardStore that round-trips values
// through JSON the same way the redis client does.
type fakeWizardStore struct {
	data map[string][]byte
}

func newFakeWizardStore() *fakeWizardStore {
	return &fakeWizardStore{data: make(map[string][]byte)}
}

func (f *fakeWizardStore) SetWizard(_ context.Context, token string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[token] = raw
	return nil
}

func (f *fakeWizardStore) GetWizard(_ context.Context, token string, dest interface{}) error {
	raw, ok := f.data[token]
	if !ok {
		return redis.ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeWizardStore) DeleteWizard(_ context.Context, token string) error {
	delete(f.data, token)
	return nil
}

type fakeSessionStore struct {
	data map[string]*redis.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{data: make(map[string]*redis.Session)}
}

func (f *fakeSessionStore) SetSession(_ context.Context, token string, session *redis.Session, _ time.Duration) error {
	f.data[token] = session
	return nil
}

func (f *fakeSessionStore) GetSession(_ context.Context, token string) (*redis.Session, error) {
	session, ok := f.data[token]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) DeleteSession(_ context.Context, token string) error {
	delete(f.data, token)
	return nil
}
