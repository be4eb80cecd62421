package services

import (
	"errors"
	"fmt"

	"wholesale_manager/internal/metrics"
	"wholesale_manager/internal/models"
	"wholesale_manager/internal/repository"

	"github.com/gocarina/gocsv"
)

// ErrUnknownEntity is returned for a table name outside the bulk-capable set.
var ErrUnknownEntity = errors.New("unknown entity")

// ImportFormatError reports a malformed CSV row. Any such row aborts the
// entire batch; nothing is inserted.
type ImportFormatError struct {
	Row    int
	Reason string
}

func (e *ImportFormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("import failed at row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("import failed: %s", e.Reason)
}

// ImportEntities lists the entities that accept CSV import. The order
// aggregate tables are export-only: orders enter the system through the
// wizard, not through bulk upload.
var ImportEntities = []string{"customers", "suppliers", "products", "employees"}

// ExportEntities lists every entity that can be exported to CSV.
var ExportEntities = []string{
	"customers", "suppliers", "products", "employees",
	"orders", "order_items", "payments", "transportation",
}

type BulkService interface {
	Export(entity string) (string, error)
	Import(entity, csvText string) (int, error)
	Template(entity string) (string, error)
}

type bulkService struct {
	customerRepo  repository.CustomerRepository
	supplierRepo  repository.SupplierRepository
	productRepo   repository.ProductRepository
	employeeRepo  repository.EmployeeRepository
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	paymentRepo   repository.PaymentRepository
	transportRepo repository.TransportRepository
}

func NewBulkService(
	customerRepo repository.CustomerRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	employeeRepo repository.EmployeeRepository,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	paymentRepo repository.PaymentRepository,
	transportRepo repository.TransportRepository,
) BulkService {
	return &bulkService{
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

func (s *bulkService) Export(entity string) (string, error) {
	all := repository.ListOptions{}
	switch entity {
	case "customers":
		records, err := s.customerRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	case "suppliers":
		records, err := s.supplierRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	case "products":
		records, err := s.productRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	case "employees":
		records, err := s.employeeRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	case "orders":
		records, err := s.orderRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	case "order_items":
		records, err := s.orderItemRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	case "payments":
		records, err := s.paymentRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	case "transportation":
		records, err := s.transportRepo.GetAll(all)
		if err != nil {
			return "", err
		}
		return gocsv.MarshalString(&records)
	default:
		return "", ErrUnknownEntity
	}
}

// Import parses and validates the whole batch before any insert; one bad row
// fails everything.
func (s *bulkService) Import(entity, csvText string) (int, error) {
	var count int
	var err error

	switch entity {
	case "customers":
		count, err = importCustomers(s.customerRepo, csvText)
	case "suppliers":
		count, err = importSuppliers(s.supplierRepo, csvText)
	case "products":
		count, err = importProducts(s.productRepo, csvText)
	case "employees":
		count, err = importEmployees(s.employeeRepo, csvText)
	default:
		return 0, ErrUnknownEntity
	}

	if err != nil {
		return 0, err
	}
	metrics.CSVRowsImportedTotal.WithLabelValues(entity).Add(float64(count))
	return count, nil
}

func importCustomers(repo repository.CustomerRepository, csvText string) (int, error) {
	var rows []models.Customer
	if err := gocsv.UnmarshalString(csvText, &rows); err != nil {
		return 0, &ImportFormatError{Reason: err.Error()}
	}
	for i, row := range rows {
		if row.Name == "" {
			return 0, &ImportFormatError{Row: i + 2, Reason: "name is required"}
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := repo.CreateBatch(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func importSuppliers(repo repository.SupplierRepository, csvText string) (int, error) {
	var rows []models.Supplier
	if err := gocsv.UnmarshalString(csvText, &rows); err != nil {
		return 0, &ImportFormatError{Reason: err.Error()}
	}
	for i, row := range rows {
		if row.Name == "" {
			return 0, &ImportFormatError{Row: i + 2, Reason: "name is required"}
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := repo.CreateBatch(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func importProducts(repo repository.ProductRepository, csvText string) (int, error) {
	var rows []models.Product
	if err := gocsv.UnmarshalString(csvText, &rows); err != nil {
		return 0, &ImportFormatError{Reason: err.Error()}
	}
	for i, row := range rows {
		if row.Name == "" {
			return 0, &ImportFormatError{Row: i + 2, Reason: "name is required"}
		}
		if row.UnitPrice < 0 {
			return 0, &ImportFormatError{Row: i + 2, Reason: "unit price cannot be negative"}
		}
		if row.StockQuantity < 0 {
			return 0, &ImportFormatError{Row: i + 2, Reason: "stock quantity cannot be negative"}
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := repo.CreateBatch(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func importEmployees(repo repository.EmployeeRepository, csvText string) (int, error) {
	var rows []models.Employee
	if err := gocsv.UnmarshalString(csvText, &rows); err != nil {
		return 0, &ImportFormatError{Reason: err.Error()}
	}
	for i, row := range rows {
		if row.Name == "" {
			return 0, &ImportFormatError{Row: i + 2, Reason: "name is required"}
		}
		if row.Salary < 0 {
			return 0, &ImportFormatError{Row: i + 2, Reason: "salary cannot be negative"}
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := repo.CreateBatch(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Template returns a header-only CSV with one sample row for the entity.
func (s *bulkService) Template(entity string) (string, error) {
	switch entity {
	case "customers":
		return gocsv.MarshalString(&[]models.Customer{{Name: "Sample Customer", ShopName: "Sample Shop", City: "Mumbai"}})
	case "suppliers":
		return gocsv.MarshalString(&[]models.Supplier{{Name: "Sample Supplier", CompanyName: "Sample Co", City: "Pune"}})
	case "products":
		return gocsv.MarshalString(&[]models.Product{{Name: "Sample Product", Category: "General", UnitPrice: 100.0, StockQuantity: 10}})
	case "employees":
		return gocsv.MarshalString(&[]models.Employee{{Name: "Sample Employee", Role: "Sales", Salary: 25000}})
	default:
		return "", ErrUnknownEntity
	}
}
