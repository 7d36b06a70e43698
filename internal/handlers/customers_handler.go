package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/repository"
	"erp-reporting-backend/internal/services/balances"
	"erp-reporting-backend/internal/tenant"
)

type CustomersHandler struct {
	resolver *tenant.Resolver
	balances *balances.Service
}

func NewCustomersHandler(resolver *tenant.Resolver, balances *balances.Service) *CustomersHandler {
	return &CustomersHandler{resolver: resolver, balances: balances}
}

// BalanceReport returns the per customer-and-currency balance list.
func (h *CustomersHandler) BalanceReport(c *gin.Context) {
	db, err := h.resolver.DB(auth.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.balances.CustomerReport(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": rows})
}

func (h *CustomersHandler) ByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer ID"})
		return
	}

	db, err := h.resolver.DB(auth.CurrentUser(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := repository.NewCustomerRepository(db).GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// Summary returns the contact fields the reminder form needs for one
// customer account.
func (h *CustomersHandler) Summary(c *gin.Context) {
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

	customer, err := repository.NewCustomerRepository(db).GetByAccountID(accountID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customer": gin.H{
			"cu_name":    customer.CuName,
			"cu_company": customer.CuCompany,
			"cu_address": customer.CuAddress,
			"cu_mobile1": customer.CuMobile1,
			"cu_mobile2": customer.CuMobile2,
			"cu_email":   customer.CuEmail,
			"cu_acc_id":  customer.CuAccID,
		},
	})
}
