package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// CreateCostCenterRequest defines the data needed to create a cost center.
type CreateCostCenterRequest struct {
	GroupName  string `json:"groupName" binding:"required"`
	CostCenter string `json:"costCenter" binding:"required"`
	Area       string `json:"area"`
	State      string `json:"state" binding:"omitempty,oneof=Income Expense"`
}

// UpdateCostCenterRequest defines the fields allowed for updating a cost center.
type UpdateCostCenterRequest struct {
	GroupName  *string `json:"groupName"`
	CostCenter *string `json:"costCenter"`
	Area       *string `json:"area"`
	State      *string `json:"state" binding:"omitempty,oneof=Income Expense"`
}

// CostCenterResponse defines the data returned for a cost center.
type CostCenterResponse struct {
	CostCenterID string    `json:"costCenterID"`
	Name         string    `json:"name"`
	GroupName    string    `json:"groupName"`
	CostCenter   string    `json:"costCenter"`
	Area         string    `json:"area"`
	State        string    `json:"state"`
	Global       bool      `json:"global"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCostCenterResponse converts a domain.CostCenter to its DTO.
func ToCostCenterResponse(cc *domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CostCenterID: cc.CostCenterID,
		Name:         cc.Name,
		GroupName:    cc.GroupName,
		CostCenter:   cc.CostCenter,
		Area:         cc.Area,
		State:        string(cc.State),
		Global:       cc.UserID == nil,
		CreatedAt:    cc.CreatedAt,
	}
}

// ToCostCenterResponses converts a slice of domain.CostCenter to DTOs.
func ToCostCenterResponses(ccs []domain.CostCenter) []CostCenterResponse {
	responses := make([]CostCenterResponse, len(ccs))
	for i, cc := range ccs {
		responses[i] = ToCostCenterResponse(&cc)
	}
	return responses
}
