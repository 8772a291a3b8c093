package domain

import "time"

// CostCenter is a categorization tag (group/cost-center/area) attachable
// to transactions and bills. UserID nil means the cost center is global.
// Deleting a cost center detaches references rather than cascading.
type CostCenter struct {
	CostCenterID string           `json:"costCenterID"`
	UserID       *string          `json:"userID,omitempty"`
	Name         string           `json:"name"` // combined display name
	GroupName    string           `json:"groupName"`
	CostCenter   string           `json:"costCenter"`
	Area         string           `json:"area"`
	State        TransactionState `json:"state,omitempty"` // optional default state tag
	CreatedAt    time.Time        `json:"createdAt"`
}
