package services

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	"github.com/SscSPs/personal_finance_app/internal/dto"
)

// CostCenterSvcFacade defines operations for cost center management
type CostCenterSvcFacade interface {
	// GetCostCenterByID retrieves a cost center visible to the given user.
	GetCostCenterByID(ctx context.Context, userID string, costCenterID string) (*domain.CostCenter, error)

	// ListCostCenters retrieves the cost centers visible to the given user.
	ListCostCenters(ctx context.Context, userID string) ([]domain.CostCenter, error)

	// CreateCostCenter persists a new user-owned cost center.
	CreateCostCenter(ctx context.Context, userID string, req dto.CreateCostCenterRequest) (*domain.CostCenter, error)

	// UpdateCostCenter updates a cost center owned by the given user.
	UpdateCostCenter(ctx context.Context, userID string, costCenterID string, req dto.UpdateCostCenterRequest) (*domain.CostCenter, error)

	// DeleteCostCenter removes a cost center, detaching references.
	DeleteCostCenter(ctx context.Context, userID string, costCenterID string) error
}
