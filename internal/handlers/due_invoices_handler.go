package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/cache"
	"erp-reporting-backend/internal/services/aging"
	"erp-reporting-backend/internal/tenant"
)

// Aging results are expensive to recompute, so responses are cached per
// tenant and account for an hour. A refresh query param bypasses the cache.
const dueInvoicesTTL = time.Hour

type DueInvoicesHandler struct {
	resolver *tenant.Resolver
	aging    *aging.Service
	cache    *cache.Cache
}

func NewDueInvoicesHandler(resolver *tenant.Resolver, aging *aging.Service, cache *cache.Cache) *DueInvoicesHandler {
	return &DueInvoicesHandler{resolver: resolver, aging: aging, cache: cache}
}

// accountParam parses an optional account id query value. An empty value
// means "every account"; anything present is parsed as is, including 0.
func accountParam(raw string) (int64, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// List runs the aging pass. With a p_acc_id query it covers one account,
// without it every account that still owes on a due invoice.
func (h *DueInvoicesHandler) List(c *gin.Context) {
	user := auth.CurrentUser(c)
	db, err := h.resolver.DB(user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenantName, _ := h.resolver.Resolve(user)
	accountID, hasAccount, err := accountParam(c.Query("p_acc_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}
	suffix := "all"
	if hasAccount {
		suffix = strconv.FormatInt(accountID, 10)
	}
	key := "due_invoices_" + tenantName + "_" + suffix

	if c.Query("refresh") == "" {
		var cached []aging.DueInvoiceReport
		if h.cache.GetJSON(c.Request.Context(), key, &cached) {
			c.JSON(http.StatusOK, gin.H{"invoices": cached, "cached": true})
			return
		}
	}

	var rows []aging.DueInvoiceReport
	if hasAccount {
		rows, err = h.aging.Run(db, accountID)
	} else {
		rows, err = h.aging.RunAll(db)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, rows, dueInvoicesTTL)
	c.JSON(http.StatusOK, gin.H{"invoices": rows, "cached": false})
}

// ByAccount runs the aging pass for one account, uncached. The reminder
// dialog uses it to show current numbers before sending.
func (h *DueInvoicesHandler) ByAccount(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("p_acc_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
		return
	}

	db, err := h.resolver.DB(auth.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.aging.Run(db, accountID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": rows})
}
