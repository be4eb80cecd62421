package wizard

import (
	"math"
	"time"

	"wholesale_manager/internal/models"
)

// State is one step of the order wizard.
type State string

const (
	StateCart             State = "Cart"
	StatePaymentPending   State = "PaymentPending"
	StateLogisticsPending State = "LogisticsPending"
	StateConfirmed        State = "Confirmed"
	StateCancelled        State = "Cancelled"
)

// Line is one cart entry. UnitPrice is snapshotted when the line is added
// and never re-read from the product afterwards.
type Line struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (l Line) Total() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// PaymentDetails is the payment captured between PaymentPending and
// LogisticsPending.
type PaymentDetails struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Mode   string    `json:"mode"`
}

// LogisticsDetails is the carrier assignment required before confirmation.
type LogisticsDetails struct {
	VehicleNumber string    `json:"vehicle_number"`
	DriverName    string    `json:"driver_name"`
	TransportMode string    `json:"transport_mode"`
	DepartureDate time.Time `json:"departure_date"`
	ArrivalDate   time.Time `json:"arrival_date"`
}

// Wizard is the sequential transaction builder for one draft order.
// Transitions validate first and mutate only on success, so a failed
// transition leaves the wizard exactly as it was.
type Wizard struct {
	Token       string            `json:"token"`
	OrderID     uint              `json:"order_id"`
	UserID      uint              `json:"user_id"`
	State       State             `json:"state"`
	Lines       []Line            `json:"lines"`
	LockedTotal float64           `json:"locked_total"`
	Payment     *PaymentDetails   `json:"payment,omitempty"`
	Logistics   *LogisticsDetails `json:"logistics,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// New starts a wizard in the Cart state for an already-created draft order.
func New(token string, orderID, userID uint) *Wizard {
	now := time.Now()
	return &Wizard{
		Token:     token,
		OrderID:   orderID,
		UserID:    userID,
		State:     StateCart,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total returns the running cart total: sum of quantity x price-at-add-time.
func (w *Wizard) Total() float64 {
	total := 0.0
	for _, line := range w.Lines {
		total += line.Total()
	}
	return total
}

func (w *Wizard) Terminal() bool {
	return w.State == StateConfirmed || w.State == StateCancelled
}

func (w *Wizard) findLine(productID uint) int {
	for i, line := range w.Lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds a product to the cart or merges into an existing line. The
// price snapshot of an existing line is kept; availableStock bounds the
// merged quantity.
func (w *Wizard) AddItem(productID uint, name string, unitPrice float64, quantity, availableStock int) error {
	if w.State != StateCart {
		return &InvalidTransitionError{State: w.State, Op: "add item"}
	}
	if quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	idx := w.findLine(productID)
	newQty := quantity
	if idx >= 0 {
		newQty += w.Lines[idx].Quantity
	}
	if newQty > availableStock {
		return &ValidationError{Field: "quantity", Reason: "exceeds available stock"}
	}

	if idx >= 0 {
		w.Lines[idx].Quantity = newQty
	} else {
		w.Lines = append(w.Lines, Line{
			ProductID:   productID,
			ProductName: name,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		})
	}
	w.UpdatedAt = time.Now()
	return nil
}

// UpdateItem replaces the quantity of an existing line.
func (w *Wizard) UpdateItem(productID uint, quantity, availableStock int) error {
	if w.State != StateCart {
		return &InvalidTransitionError{State: w.State, Op: "update item"}
	}
	if quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if quantity > availableStock {
		return &ValidationError{Field: "quantity", Reason: "exceeds available stock"}
	}
	idx := w.findLine(productID)
	if idx < 0 {
		return &ValidationError{Field: "product_id", Reason: "not in cart"}
	}
	w.Lines[idx].Quantity = quantity
	w.UpdatedAt = time.Now()
	return nil
}

// RemoveItem drops a line from the cart. Removing the last line is legal.
func (w *Wizard) RemoveItem(productID uint) error {
	if w.State != StateCart {
		return &InvalidTransitionError{State: w.State, Op: "remove item"}
	}
	idx := w.findLine(productID)
	if idx < 0 {
		return &ValidationError{Field: "product_id", Reason: "not in cart"}
	}
	w.Lines = append(w.Lines[:idx], w.Lines[idx+1:]...)
	w.UpdatedAt = time.Now()
	return nil
}

// Checkout moves Cart -> PaymentPending and locks the line-item set.
func (w *Wizard) Checkout() error {
	if w.State != StateCart {
		return &InvalidTransitionError{State: w.State, Op: "checkout"}
	}
	if len(w.Lines) == 0 {
		return ErrEmptyCart
	}
	w.LockedTotal = w.Total()
	w.State = StatePaymentPending
	w.UpdatedAt = time.Now()
	return nil
}

// CapturePayment moves PaymentPending -> LogisticsPending. The amount must
// equal the locked total to the cent.
func (w *Wizard) CapturePayment(date time.Time, amount float64, mode string) error {
	if w.State != StatePaymentPending {
		return &InvalidTransitionError{State: w.State, Op: "capture payment"}
	}
	if !models.ValidPaymentMode(mode) {
		return &ValidationError{Field: "payment_mode", Reason: "unknown payment mode"}
	}
	if math.Abs(amount-w.LockedTotal) >= 0.005 {
		return &PaymentMismatchError{Expected: w.LockedTotal, Got: amount}
	}
	w.Payment = &PaymentDetails{Date: date, Amount: amount, Mode: mode}
	w.State = StateLogisticsPending
	w.UpdatedAt = time.Now()
	return nil
}

// AssignLogistics records complete carrier details while in LogisticsPending.
// The state advances to Confirmed only via MarkConfirmed, after the commit
// transaction has succeeded.
func (w *Wizard) AssignLogistics(d LogisticsDetails) error {
	if w.State != StateLogisticsPending {
		return &InvalidTransitionError{State: w.State, Op: "assign logistics"}
	}

	var missing []string
	if d.VehicleNumber == "" {
		missing = append(missing, "vehicle_number")
	}
	if d.DriverName == "" {
		missing = append(missing, "driver_name")
	}
	if d.TransportMode == "" || !models.ValidTransportMode(d.TransportMode) {
		missing = append(missing, "transport_mode")
	}
	if d.DepartureDate.IsZero() {
		missing = append(missing, "departure_date")
	}
	if d.ArrivalDate.IsZero() {
		missing = append(missing, "arrival_date")
	}
	if len(missing) > 0 {
		return &IncompleteLogisticsError{Missing: missing}
	}
	if d.ArrivalDate.Before(d.DepartureDate) {
		return &ValidationError{Field: "arrival_date", Reason: "before departure date"}
	}

	w.Logistics = &d
	w.UpdatedAt = time.Now()
	return nil
}

// MarkConfirmed finalizes the wizard once the atomic commit has been applied.
func (w *Wizard) MarkConfirmed() error {
	if w.State != StateLogisticsPending || w.Logistics == nil {
		return &InvalidTransitionError{State: w.State, Op: "confirm"}
	}
	w.State = StateConfirmed
	w.UpdatedAt = time.Now()
	return nil
}

// BackToCart unlocks the line-item set for further edits. Any tentatively
// captured payment is discarded by the caller alongside this transition.
func (w *Wizard) BackToCart() error {
	if w.State != StatePaymentPending && w.State != StateLogisticsPending {
		return &InvalidTransitionError{State: w.State, Op: "return to cart"}
	}
	w.Payment = nil
	w.Logistics = nil
	w.LockedTotal = 0
	w.State = StateCart
	w.UpdatedAt = time.Now()
	return nil
}

// Cancel aborts the wizard from any non-terminal state.
func (w *Wizard) Cancel() error {
	if w.Terminal() {
		return &InvalidTransitionError{State: w.State, Op: "cancel"}
	}
	w.State = StateCancelled
	w.UpdatedAt = time.Now()
	return nil
}
