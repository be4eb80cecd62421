package repository

import (
	"time"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/wizard"

	"gorm.io/gorm"
)

// RecentOrderRow is a dashboard projection of an order with its customer and
// employee names resolved.
type RecentOrderRow struct {
	OrderID      uint      `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	EmployeeName string    `json:"employee_name"`
	OrderDate    time.Time `json:"order_date"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
}

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetAll(opts ListOptions) ([]models.Order, error)
	Update(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
	Count() (int64, error)
	CountByStatusNot(status models.OrderStatus) (int64, error)
	Recent(limit int) ([]RecentOrderRow, error)

	// Confirm applies the entire commit of a draft order in one transaction:
	// stock decrement per line (re-checked against current availability),
	// order items, transportation record, and the status/total update.
	// A failed stock check rolls everything back and returns
	// *wizard.StockConflictError for the offending product.
	Confirm(orderID uint, items []models.OrderItem, transport *models.Transportation, total float64) error

	// DeleteDraft discards a draft order together with its owned child
	// records (items, payment, transportation). Stock is never touched.
	DeleteDraft(orderID uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll(opts ListOptions) ([]models.Order, error) {
	var orders []models.Order
	err := applyListOptions(r.db, opts, "status").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("order_id = ?", id).
		Update("status", string(status)).Error
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) CountByStatusNot(status models.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("status <> ?", string(status)).Count(&count).Error
	return count, err
}

func (r *orderRepository) Recent(limit int) ([]RecentOrderRow, error) {
	var rows []RecentOrderRow
	err := r.db.Raw(`
		SELECT o.order_id, c.name AS customer_name, e.name AS employee_name,
		       o.order_date, o.status, o.total_amount
		FROM orders o
		JOIN customers c ON c.customer_id = o.customer_id
		JOIN employees e ON e.employee_id = o.employee_id
		WHERE o.deleted_at IS NULL
		ORDER BY o.order_date DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) Confirm(orderID uint, items []models.OrderItem, transport *models.Transportation, total float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// The stock check from cart time is not trusted here: availability is
		// re-verified inside the transaction so a losing concurrent session
		// gets a conflict instead of driving stock negative.
		for _, item := range items {
			res := tx.Model(&models.Product{}).
				Where("product_id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				conflict := &wizard.StockConflictError{
					ProductID: item.ProductID,
					Requested: item.Quantity,
				}
				var product models.Product
				if err := tx.First(&product, item.ProductID).Error; err == nil {
					conflict.ProductName = product.Name
					conflict.Available = product.StockQuantity
				}
				return conflict
			}
		}

		for i := range items {
			items[i].OrderID = orderID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		transport.OrderID = orderID
		if err := tx.Create(transport).Error; err != nil {
			return err
		}

		return tx.Model(&models.Order{}).Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"status":       string(models.OrderConfirmed),
				"total_amount": total,
			}).Error
	})
}

// DeleteDraft removes a discarded draft for real rather than soft-deleting:
// an abandoned wizard is not history, and soft-deleted payment and
// transportation rows would pin their order_id in the unique indexes.
func (r *orderRepository) DeleteDraft(orderID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&models.Transportation{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.Order{}, orderID).Error
	})
}
