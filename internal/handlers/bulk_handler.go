package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"wholesale_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// BulkHandler serves CSV export, import and templates. The whole group sits
// behind the Manager gate.
type BulkHandler struct {
	bulkService services.BulkService
}

func NewBulkHandler(bulkService services.BulkService) *BulkHandler {
	return &BulkHandler{bulkService: bulkService}
}

func (h *BulkHandler) Export(c *gin.Context) {
	entity := c.Param("entity")
	csvData, err := h.bulkService.Export(entity)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("%s_%s.csv", entity, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", []byte(csvData))
}

func (h *BulkHandler) Import(c *gin.Context) {
	entity := c.Param("entity")
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return
	}
	count, err := h.bulkService.Import(entity, string(body))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": count})
}

func (h *BulkHandler) Template(c *gin.Context) {
	entity := c.Param("entity")
	csvData, err := h.bulkService.Template(entity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entity+"_template.csv"))
	c.Data(http.StatusOK, "text/csv", []byte(csvData))
}
