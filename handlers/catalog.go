package handlers

import (
	"net/http"

	"unicare/middleware"
	"unicare/models"
	catalogSvc "unicare/services/catalog"
	"unicare/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the pharmacy and lab catalogs, orders and inventory.
type CatalogHandler struct {
	Catalog catalogSvc.CatalogService
}

func (h *CatalogHandler) ListMedicines(c *gin.Context) {
	medicines, err := h.Catalog.ListMedicines()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, medicines)
}

func (h *CatalogHandler) CreateMedicine(c *gin.Context) {
	var m models.Medicine
	if err := c.ShouldBindJSON(&m); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	created, err := h.Catalog.CreateMedicine(&m)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateMedicine(c *gin.Context) {
	var m models.Medicine
	if err := c.ShouldBindJSON(&m); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	m.ID = c.Param("id")
	if err := h.Catalog.UpdateMedicine(&m); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *CatalogHandler) ListLabTests(c *gin.Context) {
	tests, err := h.Catalog.ListLabTests()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *CatalogHandler) CreateLabTest(c *gin.Context) {
	var t models.LabTest
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	created, err := h.Catalog.CreateLabTest(&t)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) ListLabPackages(c *gin.Context) {
	packages, err := h.Catalog.ListLabPackages()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

func (h *CatalogHandler) CreateLabPackage(c *gin.Context) {
	var p models.LabPackage
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	created, err := h.Catalog.CreateLabPackage(&p)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) PlaceMedicineOrder(c *gin.Context) {
	var req models.MedicineOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	order, err := h.Catalog.PlaceMedicineOrder(middleware.CallerID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *CatalogHandler) MyMedicineOrders(c *gin.Context) {
	orders, err := h.Catalog.GetMedicineOrders(middleware.CallerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CatalogHandler) SetMedicineOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Catalog.SetMedicineOrderStatus(c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

func (h *CatalogHandler) PlaceLabOrder(c *gin.Context) {
	var req models.LabOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	order, err := h.Catalog.PlaceLabOrder(middleware.CallerID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *CatalogHandler) MyLabOrders(c *gin.Context) {
	orders, err := h.Catalog.GetLabOrders(middleware.CallerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CatalogHandler) SetLabOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Catalog.SetLabOrderStatus(c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

// Inventory is the admin stock view with low-stock flags.
func (h *CatalogHandler) Inventory(c *gin.Context) {
	items, err := h.Catalog.Inventory()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) AdjustStock(c *gin.Context) {
	var req models.StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Catalog.AdjustStock(middleware.CallerID(c), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stock adjusted"})
}

func (h *CatalogHandler) StockLedger(c *gin.Context) {
	entries, err := h.Catalog.StockLedger(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
