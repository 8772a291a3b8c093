package export

import (
	"fmt"
	"io"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Transactions"

// WriteTransactionsExcel writes the transactions as an xlsx workbook with a
// single sheet.
func WriteTransactionsExcel(w io.Writer, txns []domain.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := make([]any, len(transactionHeader))
	for i, h := range transactionHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write excel header: %w", err)
	}

	for i, t := range txns {
		row := []any{
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
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write excel row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write excel file: %w", err)
	}
	return nil
}
