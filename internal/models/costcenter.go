package models

import "time"

// CostCenter is the DB-layer shape of a cost center row.
type CostCenter struct {
	CostCenterID string    `db:"cost_center_id"`
	UserID       *string   `db:"user_id"`
	Name         string    `db:"name"`
	GroupName    string    `db:"group_name"`
	CostCenter   string    `db:"cost_center"`
	Area         string    `db:"area"`
	State        string    `db:"state"`
	CreatedAt    time.Time `db:"created_at"`
}
