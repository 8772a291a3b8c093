package audit_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/audit"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBill(date time.Time) domain.Bill {
	return domain.Bill{
		BillID:        "bill-1",
		Date:          date,
		State:         domain.Expense,
		BankName:      "Intesa",
		AccountName:   "Main",
		Price:         decimal.NewFromInt(200),
		Fee:           decimal.NewFromInt(2),
		BeforeBalance: decimal.NewFromInt(1000),
		AfterBalance:  decimal.NewFromInt(798),
	}
}

func TestAppendBill_CreatesMonthFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	saver := audit.NewMonthlyAutoSaver(dir)

	bill := sampleBill(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, saver.AppendBill(bill))

	f, err := os.Open(filepath.Join(dir, "2025-03.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "bill-1", records[1][0])
	assert.Equal(t, "2025-03-10", records[1][1])
	assert.Equal(t, "200", records[1][2])
	assert.Equal(t, "Expense", records[1][3])
}

func TestAppendBill_AppendsWithoutRepeatingHeader(t *testing.T) {
	dir := t.TempDir()
	saver := audit.NewMonthlyAutoSaver(dir)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, saver.AppendBill(sampleBill(date)))
	second := sampleBill(date)
	second.BillID = "bill-2"
	require.NoError(t, saver.AppendBill(second))

	f, err := os.Open(filepath.Join(dir, "2025-03.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "bill-1", records[1][0])
	assert.Equal(t, "bill-2", records[2][0])
}

func TestAppendBill_SplitsByMonth(t *testing.T) {
	dir := t.TempDir()
	saver := audit.NewMonthlyAutoSaver(dir)

	require.NoError(t, saver.AppendBill(sampleBill(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, saver.AppendBill(sampleBill(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))))

	_, err := os.Stat(filepath.Join(dir, "2025-03.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "2025-04.csv"))
	assert.NoError(t, err)
}

func TestAppendBill_DisabledWithoutDir(t *testing.T) {
	saver := audit.NewMonthlyAutoSaver("")
	assert.NoError(t, saver.AppendBill(sampleBill(time.Now())))
}
