package aging

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"erp-reporting-backend/internal/models"
	"erp-reporting-backend/internal/repository"
)

// Service runs the due-invoice aging pass: compute the customer's net ledger
// balance, reset the calculated fields, replay the payment waterfall and
// return the enriched due-invoice rows. Passes for the same account are
// serialized so two concurrent requests cannot interleave the
// reset-then-reallocate sequence.
type Service struct {
	rateDivides bool
	locks       sync.Map // account id -> *sync.Mutex
}

func NewService(rateDivides bool) *Service {
	return &Service{rateDivides: rateDivides}
}

func (s *Service) accountLock(accountID int64) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(accountID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CustomerBalance computes the account's net floating balance: ledger credit
// minus debit over qualifying rows, plus the invoice-return adjustment.
func (s *Service) CustomerBalance(db *gorm.DB, accountID int64) (float64, error) {
	dueRepo := repository.NewDueInvoiceRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	returnTotal, err := dueRepo.ReturnTotal(accountID, s.rateDivides)
	if err != nil {
		return 0, err
	}
	creditSum, debitSum, err := ledgerRepo.GlSums(accountID)
	if err != nil {
		return 0, err
	}
	return creditSum - debitSum + returnTotal, nil
}

// Run executes one aging pass for the account on the given tenant database.
// A failed pass leaves already persisted resets and allocations in place;
// the caller must treat it as "balances recalculated, presentation may be
// incomplete", not as atomic.
func (s *Service) Run(db *gorm.DB, accountID int64) ([]DueInvoiceReport, error) {
	mu := s.accountLock(accountID)
	mu.Lock()
	defer mu.Unlock()

	dueRepo := repository.NewDueInvoiceRepository(db)

	balance, err := s.CustomerBalance(db, accountID)
	if err != nil {
		return nil, err
	}

	if err := dueRepo.ResetCalc(accountID); err != nil {
		return nil, err
	}

	invoices, err := dueRepo.ListForAllocation(accountID)
	if err != nil {
		return nil, err
	}

	allocations, remaining := Allocate(balance, invoices)
	if err := s.applyAllocations(db, allocations); err != nil {
		return nil, err
	}
	log.Debug().
		Int64("account_id", accountID).
		Float64("balance", balance).
		Float64("remaining", remaining).
		Int("invoices", len(invoices)).
		Msg("aging pass allocated")

	return s.enrich(db, accountID)
}

// RunAll runs the aging pass for every account that still owes on a due
// invoice, one goroutine per account, and returns the flattened rows sorted
// by invoice date. A single failing account fails the whole run.
func (s *Service) RunAll(db *gorm.DB) ([]DueInvoiceReport, error) {
	accounts, err := repository.NewDueInvoiceRepository(db).AccountsWithDue()
	if err != nil {
		return nil, err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		all      []DueInvoiceReport
		firstErr error
	)
	for _, accountID := range accounts {
		wg.Add(1)
		go func(accountID int64) {
			defer wg.Done()
			rows, err := s.Run(db, accountID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			all = append(all, rows...)
		}(accountID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(all, func(i, j int) bool { return all[i].InvoiceDate.Before(all[j].InvoiceDate) })
	return all, nil
}

func (s *Service) applyAllocations(db *gorm.DB, allocations []Allocation) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, a := range allocations {
			status := 0
			if a.Settled {
				status = 1
			}
			if err := tx.Model(&models.DueInvoice{}).
				Where("in_due_id = ?", a.InDueID).
				Updates(map[string]interface{}{
					"in_due_calc_net":    a.Net,
					"in_due_calc_paid":   a.Paid,
					"in_due_calc_status": status,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// enrich joins each due-invoice row to its invoice, customer, currency,
// agent and type details. The remaining amount and the settled-row filter
// are derived in finalize over the scanned rows.
func (s *Service) enrich(db *gorm.DB, accountID int64) ([]DueInvoiceReport, error) {
	var rows []DueInvoiceReport
	err := db.Raw(`
		SELECT d.in_due_inv_id AS invoice_id,
			i.in_list_number AS invoice_number,
			i.in_list_datetime AS invoice_date,
			i.in_list_desc AS invoice_desc,
			COALESCE(i.in_list_net, 0) AS invoice_net,
			COALESCE(i.in_list_payment, 0) AS invoice_payment,
			i.in_list_remind AS invoice_remind,
			c.cu_name AS customer_name,
			c.cu_company AS customer_company,
			c.cu_address AS customer_address,
			c.cu_mobile1 AS customer_mobile1,
			c.cu_mobile2 AS customer_mobile2,
			c.cu_email AS customer_email,
			COALESCE(a.ag_name, '') AS agent_name,
			COALESCE(cur.cur_lst_id, 0) AS currency_id,
			COALESCE(cur.cur_lst_name, '') AS currency_name,
			COALESCE(t.in_type_name, '') AS invoice_type_name,
			d.in_due_calc_net AS calc_net,
			d.in_due_calc_paid AS calc_paid,
			COALESCE(NULLIF(d.in_due_inv_curr_val, 0), 1) AS currency_value,
			d.in_due_inv_acc_id AS account_id
		FROM tbl_invoice_due d
		JOIN tbl_invoice_list i ON i.in_list_id = d.in_due_inv_id
		JOIN tbl_cust c ON c.cu_acc_id = i.in_list_acc_cust
		LEFT JOIN tbl_agent a ON a.ag_id = i.in_list_agent_id
		LEFT JOIN tbl_currency cur ON cur.cur_lst_id = i.in_list_currency_id
		LEFT JOIN tbl_invoice_type t ON t.in_type_id = i.in_list_type_id
		WHERE d.in_due_inv_acc_id = ?
		ORDER BY i.in_list_datetime ASC`,
		accountID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return finalize(rows, time.Now()), nil
}
