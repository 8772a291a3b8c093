// Package export writes filtered transaction sets to CSV and Excel files
// and parses the same formats back for import.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

var transactionHeader = []string{"date", "bank_name", "account_name", "amount", "fee", "state", "cost_center", "before_balance", "after_balance"}

// WriteTransactionsCSV writes the transactions as CSV rows with a header.
func WriteTransactionsCSV(w io.Writer, txns []domain.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range txns {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.BankName,
			t.AccountName,
			t.Amount.String(),
			t.Fee.String(),
			string(t.State),
			t.CostCenterName,
			t.BeforeBalance.String(),
			t.AfterBalance.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
