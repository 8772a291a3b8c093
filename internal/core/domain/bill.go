package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a user-entered billing record. Creating a Bill always produces
// exactly one linked Transaction carrying the same snapshot pair; deleting
// a Bill deletes that Transaction and reverses the balance delta.
type Bill struct {
	BillID         string           `json:"billID"`
	BankID         string           `json:"bankID"`
	CostCenterID   *string          `json:"costCenterID,omitempty"`
	Date           time.Time        `json:"date"`
	State          TransactionState `json:"state"`
	BankName       string           `json:"bankName"`
	AccountName    string           `json:"accountName"`
	CostCenterName string           `json:"costCenterName"`
	Price          decimal.Decimal  `json:"price"`
	Fee            decimal.Decimal  `json:"fee"`
	BeforeBalance  decimal.Decimal  `json:"beforeBalance"`
	AfterBalance   decimal.Decimal  `json:"afterBalance"`
	CreatedAt      time.Time        `json:"createdAt"`
	CreatedBy      string           `json:"createdBy"`
}
