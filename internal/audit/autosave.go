// Package audit maintains an append-only monthly CSV trail of recorded
// bills, independent of the database. Writing it is best-effort: callers
// log failures and move on.
package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

var csvHeader = []string{"id", "date", "price", "state", "fee", "bank_name", "account_name", "before_balance", "after_balance", "cost_center_id"}

// MonthlyAutoSaver appends bill records to one CSV file per calendar month
// (YYYY-MM.csv) under its directory.
type MonthlyAutoSaver struct {
	dir string
}

func NewMonthlyAutoSaver(dir string) *MonthlyAutoSaver {
	return &MonthlyAutoSaver{dir: dir}
}

// AppendBill writes one row to the month file of the bill's date, creating
// the file with a header row if needed.
func (a *MonthlyAutoSaver) AppendBill(bill domain.Bill) error {
	if a == nil || a.dir == "" {
		return nil
	}
	if err := os.MkdirAll(a.dir, 0755); err != nil {
		return fmt.Errorf("create auto-save directory: %w", err)
	}

	path := filepath.Join(a.dir, bill.Date.Format("2006-01")+".csv")
	info, statErr := os.Stat(path)
	isNew := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open auto-save file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("write auto-save header: %w", err)
		}
	}

	costCenterID := ""
	if bill.CostCenterID != nil {
		costCenterID = *bill.CostCenterID
	}
	record := []string{
		bill.BillID,
		bill.Date.Format("2006-01-02"),
		bill.Price.String(),
		string(bill.State),
		bill.Fee.String(),
		bill.BankName,
		bill.AccountName,
		bill.BeforeBalance.String(),
		bill.AfterBalance.String(),
		costCenterID,
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("write auto-save record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush auto-save file: %w", err)
	}
	return nil
}
