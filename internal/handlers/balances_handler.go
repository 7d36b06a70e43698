package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/services/balances"
	"erp-reporting-backend/internal/tenant"
)

type BalancesHandler struct {
	resolver *tenant.Resolver
	balances *balances.Service
}

func NewBalancesHandler(resolver *tenant.Resolver, balances *balances.Service) *BalancesHandler {
	return &BalancesHandler{resolver: resolver, balances: balances}
}

// Query returns stored account balances, optionally filtered by account
// and currency.
func (h *BalancesHandler) Query(c *gin.Context) {
	db, err := h.resolver.DB(auth.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var accountID *int64
	if raw := c.Query("account_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account ID"})
			return
		}
		accountID = &id
	}
	var currencyID *int
	if raw := c.Query("currency_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid currency ID"})
			return
		}
		currencyID = &id
	}

	views, err := h.balances.Query(db, accountID, currencyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(views) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no balances found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": views})
}

// Initialize fully recomputes the materialized balances of the tenant.
func (h *BalancesHandler) Initialize(c *gin.Context) {
	db, err := h.resolver.DB(auth.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.balances.Initialize(db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "balances initialized"})
}

// Update folds ledger entries newer than the high-water mark into the
// materialized balances.
func (h *BalancesHandler) Update(c *gin.Context) {
	db, err := h.resolver.DB(auth.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.balances.Update(db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "balances updated"})
}
