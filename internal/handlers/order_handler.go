package handlers

import (
	"net/http"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the order, payment and transportation CRUD screens.
// Orders themselves are created only through the wizard; this surface reads
// them, edits drafts, and cancels.
type OrderHandler struct {
	orderService     services.OrderService
	paymentService   services.PaymentService
	transportService services.TransportService
}

func NewOrderHandler(
	orderService services.OrderService,
	paymentService services.PaymentService,
	transportService services.TransportService,
) *OrderHandler {
	return &OrderHandler{
		orderService:     orderService,
		paymentService:   paymentService,
		transportService: transportService,
	}
}

// Orders

func (h *OrderHandler) ListOrders(c *gin.Context) {
	opts := parseListOptions(c, "order_id", "order_date", "status", "total_amount")
	orders, err := h.orderService.GetAll(opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.orderService.GetItems(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	order.ID = id
	if err := h.orderService.Update(&order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.orderService.Cancel(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Payments

func (h *OrderHandler) ListPayments(c *gin.Context) {
	opts := parseListOptions(c, "payment_id", "payment_date", "amount", "payment_mode")
	payments, err := h.paymentService.GetAll(opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *OrderHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	payment, err := h.paymentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *OrderHandler) CreatePayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	if err := h.paymentService.Create(&payment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	payment.ID = id
	if err := h.paymentService.Update(&payment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *OrderHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.paymentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Transportation

func (h *OrderHandler) ListTransports(c *gin.Context) {
	opts := parseListOptions(c, "transport_id", "departure_date", "arrival_date", "status")
	transports, err := h.transportService.GetAll(opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transports)
}

func (h *OrderHandler) GetTransport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	transport, err := h.transportService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transport)
}

func (h *OrderHandler) CreateTransport(c *gin.Context) {
	var transport models.Transportation
	if err := c.ShouldBindJSON(&transport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	if err := h.transportService.Create(&transport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transport)
}

func (h *OrderHandler) UpdateTransport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var transport models.Transportation
	if err := c.ShouldBindJSON(&transport); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	transport.ID = id
	if err := h.transportService.Update(&transport); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transport)
}

func (h *OrderHandler) DeleteTransport(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.transportService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
