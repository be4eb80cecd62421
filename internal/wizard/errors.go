package wizard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCart is returned when checkout is attempted with no line items.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports a bad input shape or range on a cart edit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError reports an operation applied in the wrong state.
type InvalidTransitionError struct {
	State State
	Op    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s in state %s", e.Op, e.State)
}

// PaymentMismatchError reports a captured amount that differs from the locked total.
type PaymentMismatchError struct {
	Expected float64
	Got      float64
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("payment amount %.2f does not match order total %.2f", e.Got, e.Expected)
}

// IncompleteLogisticsError reports missing carrier or delivery details.
type IncompleteLogisticsError struct {
	Missing []string
}

func (e *IncompleteLogisticsError) Error() string {
	return fmt.Sprintf("incomplete logistics details: missing %s", strings.Join(e.Missing, ", "))
}

// StockConflictError is detected inside the commit transaction when available
// stock no longer covers a line item. The commit is rolled back entirely.
type StockConflictError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (%s): requested %d, available %d",
		e.ProductID, e.ProductName, e.Requested, e.Available)
}
