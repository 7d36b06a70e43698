package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"erp-reporting-backend/internal/auth"
	"erp-reporting-backend/internal/repository"
	"erp-reporting-backend/internal/services/dashboard"
	"erp-reporting-backend/internal/tenant"
)

type DashboardHandler struct {
	resolver  *tenant.Resolver
	dashboard *dashboard.Service
}

func NewDashboardHandler(resolver *tenant.Resolver, dash *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{resolver: resolver, dashboard: dash}
}

// InvoiceData returns the per-type sales series. The optional startDate and
// endDate query params (YYYY-MM-DD) default to the last twelve months.
func (h *DashboardHandler) InvoiceData(c *gin.Context) {
	user := auth.CurrentUser(c)
	db, err := h.resolver.DB(user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenantName, _ := h.resolver.Resolve(user)

	start, end := dashboard.DefaultRange(time.Now())
	if raw := c.Query("startDate"); raw != "" {
		start, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, expected YYYY-MM-DD"})
			return
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		end, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate, expected YYYY-MM-DD"})
			return
		}
	}

	series, err := h.dashboard.InvoiceData(c.Request.Context(), db, tenantName, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (h *DashboardHandler) SummaryData(c *gin.Context) {
	user := auth.CurrentUser(c)
	db, err := h.resolver.DB(user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenantName, _ := h.resolver.Resolve(user)

	summary, err := h.dashboard.SummaryData(c.Request.Context(), db, tenantName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) TopUsers(c *gin.Context) {
	h.topRows(c, h.dashboard.TopUsers)
}

func (h *DashboardHandler) TopAgents(c *gin.Context) {
	h.topRows(c, h.dashboard.TopAgents)
}

func (h *DashboardHandler) TopProducts(c *gin.Context) {
	h.topRows(c, h.dashboard.TopProducts)
}

func (h *DashboardHandler) topRows(c *gin.Context, query func(context.Context, *gorm.DB, string) ([]repository.TopRow, error)) {
	user := auth.CurrentUser(c)
	db, err := h.resolver.DB(user)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tenantName, _ := h.resolver.Resolve(user)

	rows, err := query(c.Request.Context(), db, tenantName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
