package handlers

import (
	"net/http"
	"time"

	"wholesale_manager/internal/models"
	"wholesale_manager/internal/services"
	"wholesale_manager/internal/wizard"

	"github.com/gin-gonic/gin"
)

// WizardHandler drives the multi-step order entry workflow. A wizard is
// addressed by its token and owned by the user who started it; managers may
// operate on any wizard.
type WizardHandler struct {
	wizardService services.WizardService
}

func NewWizardHandler(wizardService services.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// parseDate accepts the date-only form used by the screens, falling back to
// RFC 3339.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (h *WizardHandler) authorize(c *gin.Context, token string) bool {
	session := CurrentSession(c)
	w, err := h.wizardService.Get(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return false
	}
	if w.UserID != session.UserID && session.Role != string(models.RoleManager) {
		c.JSON(http.StatusForbidden, gin.H{"error": "wizard belongs to another user"})
		return false
	}
	return true
}

func (h *WizardHandler) Start(c *gin.Context) {
	var req struct {
		CustomerID uint   `json:"customer_id" binding:"required"`
		EmployeeID uint   `json:"employee_id" binding:"required"`
		OrderDate  string `json:"order_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_id and employee_id are required"})
		return
	}
	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order_date"})
		return
	}

	session := CurrentSession(c)
	w, err := h.wizardService.Start(c.Request.Context(), session.UserID, req.CustomerID, req.EmployeeID, orderDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WizardHandler) Get(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	w, err := h.wizardService.Get(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) AddItem(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
		return
	}
	w, err := h.wizardService.AddItem(c.Request.Context(), token, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) UpdateItem(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}
	w, err := h.wizardService.UpdateItem(c.Request.Context(), token, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) RemoveItem(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}
	w, err := h.wizardService.RemoveItem(c.Request.Context(), token, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) Checkout(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	w, err := h.wizardService.Checkout(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) BackToCart(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	w, err := h.wizardService.BackToCart(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) CapturePayment(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	var req struct {
		PaymentDate string  `json:"payment_date"`
		Amount      float64 `json:"amount" binding:"required"`
		PaymentMode string  `json:"payment_mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount and payment_mode are required"})
		return
	}
	date, err := parseDate(req.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment_date"})
		return
	}
	w, err := h.wizardService.CapturePayment(c.Request.Context(), token, date, req.Amount, req.PaymentMode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) Confirm(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	var req struct {
		VehicleNumber string `json:"vehicle_number"`
		DriverName    string `json:"driver_name"`
		TransportMode string `json:"transport_mode"`
		DepartureDate string `json:"departure_date"`
		ArrivalDate   string `json:"arrival_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	departure, err := parseDate(req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_date"})
		return
	}
	arrival, err := parseDate(req.ArrivalDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid arrival_date"})
		return
	}

	details := wizard.LogisticsDetails{
		VehicleNumber: req.VehicleNumber,
		DriverName:    req.DriverName,
		TransportMode: req.TransportMode,
		DepartureDate: departure,
		ArrivalDate:   arrival,
	}
	w, err := h.wizardService.Confirm(c.Request.Context(), token, details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WizardHandler) Cancel(c *gin.Context) {
	token := c.Param("token")
	if !h.authorize(c, token) {
		return
	}
	if err := h.wizardService.Cancel(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
