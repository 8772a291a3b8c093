package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// column indexes for import files: date, bank_name, account_name, amount,
// fee, state. Extra columns are ignored.
const importMinColumns = 6

func parseRow(rowNum int, fields []string) (dto.ImportRow, error) {
	if len(fields) < importMinColumns {
		return dto.ImportRow{}, fmt.Errorf("expected at least %d columns, got %d", importMinColumns, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	amount, err := decimal.NewFromString(fields[3])
	if err != nil {
		return dto.ImportRow{}, fmt.Errorf("invalid amount %q", fields[3])
	}
	fee := decimal.Zero
	if fields[4] != "" {
		fee, err = decimal.NewFromString(fields[4])
		if err != nil {
			return dto.ImportRow{}, fmt.Errorf("invalid fee %q", fields[4])
		}
	}

	return dto.ImportRow{
		RowNum:      rowNum,
		Date:        fields[0],
		BankName:    fields[1],
		AccountName: fields[2],
		Amount:      amount,
		Fee:         fee,
		State:       fields[5],
	}, nil
}

// ParseTransactionsCSV reads import rows from a CSV stream. The first row
// is treated as a header and skipped. Malformed rows are carried through
// with Err set so the import can report them per row instead of aborting
// the file.
func ParseTransactionsCSV(r io.Reader) ([]dto.ImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file has no data rows")
	}

	rows := make([]dto.ImportRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 1
		row, err := parseRow(rowNum, record)
		if err != nil {
			row = dto.ImportRow{RowNum: rowNum, Err: err.Error()}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseTransactionsExcel reads import rows from the first sheet of an xlsx
// stream, with the same column layout as the CSV format.
func ParseTransactionsExcel(r io.Reader) ([]dto.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("file has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read excel rows: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file has no data rows")
	}

	rows := make([]dto.ImportRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 1
		row, err := parseRow(rowNum, record)
		if err != nil {
			row = dto.ImportRow{RowNum: rowNum, Err: err.Error()}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
