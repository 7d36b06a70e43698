package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"erp-reporting-backend/internal/cache"
	"erp-reporting-backend/internal/repository"
)

// Dashboard aggregates are cheap but hit on every page load, so responses
// are cached briefly per tenant.
const cacheTTL = 60 * time.Second

type Service struct {
	cache *cache.Cache
}

func NewService(c *cache.Cache) *Service {
	return &Service{cache: c}
}

type SeriesEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Series struct {
	Label string        `json:"label"`
	Data  []SeriesEntry `json:"data"`
}

// DefaultRange is the last twelve calendar months, the window the dashboard
// charts open with.
func DefaultRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// InvoiceData returns one sales series per sales invoice type over 30-day
// buckets in the range, plus a combined total series.
func (s *Service) InvoiceData(ctx context.Context, db *gorm.DB, tenantName string, start, end time.Time) ([]Series, error) {
	key := fmt.Sprintf("dashboard:%s:invoice-data:%d:%d", tenantName, start.Unix(), end.Unix())
	var cached []Series
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	repo := repository.NewInvoiceRepository(db)
	types, err := repo.SalesInvoiceTypes()
	if err != nil {
		return nil, err
	}

	var result []Series
	totals := map[int]float64{}
	for _, invoiceType := range types {
		points, err := repo.SalesSeriesByType(invoiceType.InTypeID, start, end)
		if err != nil {
			return nil, err
		}
		if len(points) == 0 {
			continue
		}

		series := Series{Label: invoiceType.InTypeName}
		for _, p := range points {
			series.Data = append(series.Data, SeriesEntry{
				Label: bucketLabel(start, p.Bucket),
				Value: p.Total,
			})
			totals[p.Bucket] += p.Total
		}
		result = append(result, series)
	}

	buckets := make([]int, 0, len(totals))
	for b := range totals {
		buckets = append(buckets, b)
	}
	sort.Ints(buckets)

	totalSeries := Series{Label: "إجمالي المبيعات"}
	for _, b := range buckets {
		totalSeries.Data = append(totalSeries.Data, SeriesEntry{
			Label: bucketLabel(start, b),
			Value: totals[b],
		})
	}
	result = append(result, totalSeries)

	s.cache.SetJSON(ctx, key, result, cacheTTL)
	return result, nil
}

func bucketLabel(start time.Time, bucket int) string {
	return start.Add(time.Duration(bucket) * 30 * 24 * time.Hour).Format("January 2006")
}

type Summary struct {
	TotalCustomers     int64                `json:"totalCustomers"`
	TotalCustomerDebt  []repository.DebtRow `json:"totalCustomerDebt"`
	TotalSupplierDebt  []repository.DebtRow `json:"totalSupplierDebt"`
	CurrentMonthSales  float64              `json:"currentMonthSales"`
	PreviousMonthSales float64              `json:"previousMonthSales"`
}

// SummaryData returns the headline numbers: customer count, per-currency
// customer and supplier debt, and the last two 30-day sales totals.
func (s *Service) SummaryData(ctx context.Context, db *gorm.DB, tenantName string) (*Summary, error) {
	key := "dashboard:" + tenantName + ":summary-data"
	var cached Summary
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	repo := repository.NewInvoiceRepository(db)

	totalCustomers, err := repo.CustomerCount(0)
	if err != nil {
		return nil, err
	}
	customerDebt, err := repo.DebtByCurrency(0)
	if err != nil {
		return nil, err
	}
	supplierDebt, err := repo.DebtByCurrency(1)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currentSales, err := repo.SalesTotal(now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, err
	}
	previousSales, err := repo.SalesTotal(now.AddDate(0, 0, -60), now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalCustomers:     totalCustomers,
		TotalCustomerDebt:  customerDebt,
		TotalSupplierDebt:  supplierDebt,
		CurrentMonthSales:  currentSales,
		PreviousMonthSales: previousSales,
	}
	s.cache.SetJSON(ctx, key, summary, cacheTTL)
	return summary, nil
}

// TopUsers, TopAgents and TopProducts return the month's top three
// performers by sales total.

func (s *Service) TopUsers(ctx context.Context, db *gorm.DB, tenantName string) ([]repository.TopRow, error) {
	return s.topRows(ctx, db, tenantName, "top-users-month", func(repo *repository.InvoiceRepository, start, end time.Time) ([]repository.TopRow, error) {
		return repo.TopUsers(start, end, 3)
	})
}

func (s *Service) TopAgents(ctx context.Context, db *gorm.DB, tenantName string) ([]repository.TopRow, error) {
	return s.topRows(ctx, db, tenantName, "top-agents-month", func(repo *repository.InvoiceRepository, start, end time.Time) ([]repository.TopRow, error) {
		return repo.TopAgents(start, end, 3)
	})
}

func (s *Service) TopProducts(ctx context.Context, db *gorm.DB, tenantName string) ([]repository.TopRow, error) {
	return s.topRows(ctx, db, tenantName, "top-products-month", func(repo *repository.InvoiceRepository, start, end time.Time) ([]repository.TopRow, error) {
		return repo.TopProducts(start, end, 3)
	})
}

func (s *Service) topRows(ctx context.Context, db *gorm.DB, tenantName, name string,
	query func(*repository.InvoiceRepository, time.Time, time.Time) ([]repository.TopRow, error)) ([]repository.TopRow, error) {

	key := "dashboard:" + tenantName + ":" + name
	var cached []repository.TopRow
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	now := time.Now()
	start := now.AddDate(0, 0, -30)
	rows, err := query(repository.NewInvoiceRepository(db), start, now)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, rows, cacheTTL)
	return rows, nil
}
