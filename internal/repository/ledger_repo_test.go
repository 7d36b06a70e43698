package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

// The payment-batch exclusion must filter NULL batch ids out of the NOT IN
// subquery. A single NULL in the set makes the predicate unknown for every
// row and both sums come back 0, wiping the customer's balance.
func TestGlSumsFiltersNullPaymentBatches(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`(?s)SELECT.+FROM tbl_gl.+gl_batch_id NOT IN \(.+WHERE in_pay_batch_id IS NOT NULL\)`).
		WithArgs(int64(55)).
		WillReturnRows(sqlmock.NewRows([]string{"credit_sum", "debit_sum"}).AddRow(150.0, 30.0))

	credit, debit, err := NewLedgerRepository(db).GlSums(55)
	if err != nil {
		t.Fatalf("GlSums: %v", err)
	}
	if credit != 150 || debit != 30 {
		t.Errorf("GlSums = (%v, %v), want (150, 30)", credit, debit)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet query expectations: %v", err)
	}
}
