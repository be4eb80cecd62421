package services

import (
	"context"
	"errors"
	"time"

	"wholesale_manager/internal/metrics"
	"wholesale_manager/internal/models"
	"wholesale_manager/internal/redis"
	"wholesale_manager/internal/repository"
	"wholesale_manager/internal/wizard"

	"github.com/google/uuid"
)

// ErrWizardNotFound is returned when a wizard token resolves to nothing,
// either because it never existed or because its TTL elapsed.
var ErrWizardNotFound = errors.New("wizard session not found or expired")

// WizardStore is the slice of the redis client the wizard service needs.
type WizardStore interface {
	SetWizard(ctx context.Context, token string, value interface{}, ttl time.Duration) error
	GetWizard(ctx context.Context, token string, dest interface{}) error
	DeleteWizard(ctx context.Context, token string) error
}

type WizardService interface {
	Start(ctx context.Context, userID, customerID, employeeID uint, orderDate time.Time) (*wizard.Wizard, error)
	Get(ctx context.Context, token string) (*wizard.Wizard, error)
	AddItem(ctx context.Context, token string, productID uint, quantity int) (*wizard.Wizard, error)
	UpdateItem(ctx context.Context, token string, productID uint, quantity int) (*wizard.Wizard, error)
	RemoveItem(ctx context.Context, token string, productID uint) (*wizard.Wizard, error)
	Checkout(ctx context.Context, token string) (*wizard.Wizard, error)
	BackToCart(ctx context.Context, token string) (*wizard.Wizard, error)
	CapturePayment(ctx context.Context, token string, date time.Time, amount float64, mode string) (*wizard.Wizard, error)
	Confirm(ctx context.Context, token string, details wizard.LogisticsDetails) (*wizard.Wizard, error)
	Cancel(ctx context.Context, token string) error
}

type wizardService struct {
	store        WizardStore
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	ttl          time.Duration
}

func NewWizardService(
	store WizardStore,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	ttl time.Duration,
) WizardService {
	return &wizardService{
		store:        store,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		ttl:          ttl,
	}
}

func (s *wizardService) load(ctx context.Context, token string) (*wizard.Wizard, error) {
	var w wizard.Wizard
	if err := s.store.GetWizard(ctx, token, &w); err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return nil, ErrWizardNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (s *wizardService) save(ctx context.Context, w *wizard.Wizard) error {
	return s.store.SetWizard(ctx, w.Token, w, s.ttl)
}

// Start creates the draft order row and a fresh wizard in the Cart state.
func (s *wizardService) Start(ctx context.Context, userID, customerID, employeeID uint, orderDate time.Time) (*wizard.Wizard, error) {
	if _, err := s.customerRepo.GetByID(customerID); err != nil {
		return nil, &wizard.ValidationError{Field: "customer_id", Reason: "customer not found"}
	}
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		return nil, &wizard.ValidationError{Field: "employee_id", Reason: "employee not found"}
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &models.Order{
		CustomerID: customerID,
		EmployeeID: employeeID,
		OrderDate:  orderDate,
		Status:     string(models.OrderDraft),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	w := wizard.New(uuid.NewString(), order.ID, userID)
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}

	metrics.WizardsStartedTotal.Inc()
	return w, nil
}

func (s *wizardService) Get(ctx context.Context, token string) (*wizard.Wizard, error) {
	return s.load(ctx, token)
}

func (s *wizardService) AddItem(ctx context.Context, token string, productID uint, quantity int) (*wizard.Wizard, error) {
	w, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, &wizard.ValidationError{Field: "product_id", Reason: "product not found"}
	}

	if err := w.AddItem(product.ID, product.Name, product.UnitPrice, quantity, product.StockQuantity); err != nil {
		return nil, err
	}
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *wizardService) UpdateItem(ctx context.Context, token string, productID uint, quantity int) (*wizard.Wizard, error) {
	w, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, &wizard.ValidationError{Field: "product_id", Reason: "product not found"}
	}

	if err := w.UpdateItem(product.ID, quantity, product.StockQuantity); err != nil {
		return nil, err
	}
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *wizardService) RemoveItem(ctx context.Context, token string, productID uint) (*wizard.Wizard, error) {
	w, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := w.RemoveItem(productID); err != nil {
		return nil, err
	}
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *wizardService) Checkout(ctx context.Context, token string) (*wizard.Wizard, error) {
	w, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := w.Checkout(); err != nil {
		return nil, err
	}
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// BackToCart unlocks the cart for edits and discards any tentatively
// captured payment record.
func (s *wizardService) BackToCart(ctx context.Context, token string) (*wizard.Wizard, error) {
	w, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	hadPayment := w.Payment != nil
	if err := w.BackToCart(); err != nil {
		return nil, err
	}
	if hadPayment {
		if err := s.paymentRepo.DeleteByOrderID(w.OrderID); err != nil {
			return nil, err
		}
	}
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *wizardService) CapturePayment(ctx context.Context, token string, date time.Time, amount float64, mode string) (*wizard.Wizard, error) {
	w, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	if err := w.CapturePayment(date, amount, mode); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		OrderID:     w.OrderID,
		PaymentDate: date,
		Amount:      amount,
		PaymentMode: mode,
		Status:      string(models.PaymentPaid),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		// Redis still holds the PaymentPending state, so the transition
		// never happened as far as the stored wizard is concerned.
		return nil, err
	}

	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Confirm validates logistics details and runs the atomic commit: stock
// decrement, order items, transportation, and status update all stand or
// fall together. A stock conflict leaves the wizard in LogisticsPending.
func (s *wizardService) Confirm(ctx context.Context, token string, details wizard.LogisticsDetails) (*wizard.Wizard, error) {
	w, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := w.AssignLogistics(details); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(w.Lines))
	for _, line := range w.Lines {
		items = append(items, models.OrderItem{
			OrderID:   w.OrderID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.Total(),
		})
	}

	transport := &models.Transportation{
		OrderID:       w.OrderID,
		VehicleNumber: details.VehicleNumber,
		DriverName:    details.DriverName,
		TransportMode: details.TransportMode,
		DepartureDate: details.DepartureDate,
		ArrivalDate:   details.ArrivalDate,
		Status:        "In Transit",
	}

	if err := s.orderRepo.Confirm(w.OrderID, items, transport, w.LockedTotal); err != nil {
		var conflict *wizard.StockConflictError
		if errors.As(err, &conflict) {
			metrics.StockConflictsTotal.Inc()
			// Keep the assigned logistics details for the retry.
			_ = s.save(ctx, w)
		}
		return nil, err
	}

	if err := w.MarkConfirmed(); err != nil {
		return nil, err
	}
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}

	metrics.OrdersConfirmedTotal.Inc()
	return w, nil
}

// Cancel discards the wizard and its draft order with all owned children.
// Stock is untouched: nothing was decremented before the commit.
func (s *wizardService) Cancel(ctx context.Context, token string) error {
	w, err := s.load(ctx, token)
	if err != nil {
		return err
	}
	if err := w.Cancel(); err != nil {
		return err
	}
	if err := s.orderRepo.DeleteDraft(w.OrderID); err != nil {
		return err
	}
	if err := s.store.DeleteWizard(ctx, token); err != nil {
		return err
	}
	metrics.OrdersCancelledTotal.Inc()
	return nil
}
