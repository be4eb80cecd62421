package repository

import (
	"wholesale_manager/internal/models"

	"gorm.io/gorm"
)

// ProductQuantityRow is a dashboard projection of total ordered quantity per
// product.
type ProductQuantityRow struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	TotalQty    int    `json:"total_qty"`
}

type OrderItemRepository interface {
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	GetAll(opts ListOptions) ([]models.OrderItem, error)
	TopProducts(limit int) ([]ProductQuantityRow, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderItemRepository) GetAll(opts ListOptions) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := applyListOptions(r.db, opts).Find(&items).Error
	return items, err
}

func (r *orderItemRepository) TopProducts(limit int) ([]ProductQuantityRow, error) {
	var rows []ProductQuantityRow
	err := r.db.Raw(`
		SELECT p.product_id, p.name AS product_name, SUM(oi.quantity) AS total_qty
		FROM order_items oi
		JOIN products p ON p.product_id = oi.product_id
		WHERE oi.deleted_at IS NULL
		GROUP BY p.product_id, p.name
		ORDER BY total_qty DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}
