package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/repository"
	"erp-reporting-backend/internal/tenant"
)

type InvoiceDetailsHandler struct {
	resolver *tenant.Resolver
}

func NewInvoiceDetailsHandler(resolver *tenant.Resolver) *InvoiceDetailsHandler {
	return &InvoiceDetailsHandler{resolver: resolver}
}

// Get returns one invoice header with its line items enriched with item
// names and currency conversion.
func (h *InvoiceDetailsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	db, err := h.resolver.DB(auth.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo := repository.NewInvoiceRepository(db)
	invoice, err := repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	lines, err := repo.LinesByInvoice(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	itemIDs := make([]int64, 0, len(lines))
	currencyIDs := make([]int, 0, len(lines))
	for _, line := range lines {
		itemIDs = append(itemIDs, line.InDetItemID)
		currencyIDs = append(currencyIDs, line.InDetCurrencyID)
	}
	items, err := repo.ItemsByIDs(itemIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	currencies, err := repo.CurrenciesByIDs(currencyIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	details := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		itemName := "Unknown"
		if item, ok := items[line.InDetItemID]; ok {
			itemName = item.ItName
		}
		currencyName := "Unknown"
		rate := 1.0
		if currency, ok := currencies[line.InDetCurrencyID]; ok {
			currencyName = currency.CurLstName
			if currency.CurLstRate != 0 {
				rate = currency.CurLstRate
			}
		}
		details = append(details, gin.H{
			"in_det_id":                line.InDetID,
			"item_name":                itemName,
			"currency_name":            currencyName,
			"in_det_qty":               line.InDetQty,
			"in_det_price":             line.InDetPrice,
			"in_det_discount_val":      line.InDetDiscountVal,
			"in_det_total_val":         line.InDetTotalVal,
			"itemTotalValueInCurrency": line.InDetTotalVal * rate,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice": invoice,
		"details": details,
	})
}
