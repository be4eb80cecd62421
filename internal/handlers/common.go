package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"wholesale_manager/internal/repository"
	"wholesale_manager/internal/services"
	"wholesale_manager/internal/wizard"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parseListOptions reads the shared search/limit/order query parameters.
// orderColumns whitelists sortable columns; anything else is ignored so the
// raw value never reaches the SQL ORDER BY clause.
func parseListOptions(c *gin.Context, orderColumns ...string) repository.ListOptions {
	opts := repository.ListOptions{
		Search: c.Query("search"),
		Desc:   strings.EqualFold(c.DefaultQuery("dir", "desc"), "desc"),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && limit > 0 && limit <= 1000 {
		opts.Limit = limit
	} else {
		opts.Limit = 50
	}
	requested := c.Query("order_by")
	for _, col := range orderColumns {
		if requested == col {
			opts.OrderBy = col
			break
		}
	}
	return opts
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var validation *wizard.ValidationError
	var transition *wizard.InvalidTransitionError
	var mismatch *wizard.PaymentMismatchError
	var incomplete *wizard.IncompleteLogisticsError
	var conflict *wizard.StockConflictError
	var importErr *services.ImportFormatError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.Is(err, services.ErrWizardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":        err.Error(),
			"product_id":   conflict.ProductID,
			"product_name": conflict.ProductName,
			"requested":    conflict.Requested,
			"available":    conflict.Available,
		})
	case errors.Is(err, wizard.ErrEmptyCart),
		errors.Is(err, services.ErrOrderImmutable),
		errors.Is(err, services.ErrUnknownEntity),
		errors.As(err, &validation),
		errors.As(err, &transition),
		errors.As(err, &mismatch),
		errors.As(err, &incomplete),
		errors.As(err, &importErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
