package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_app/internal/core/domain"
)

// CostCenterReader defines read operations for cost center data
type CostCenterReader interface {
	// FindCostCenterByID retrieves a cost center visible to the given user
	// (owned by them or global).
	FindCostCenterByID(ctx context.Context, userID string, costCenterID string) (*domain.CostCenter, error)

	// ListCostCenters retrieves the cost centers visible to the given user.
	ListCostCenters(ctx context.Context, userID string) ([]domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost center data
type CostCenterWriter interface {
	// SaveCostCenter persists a new cost center.
	SaveCostCenter(ctx context.Context, cc domain.CostCenter) error

	// UpdateCostCenter updates an existing cost center's details.
	UpdateCostCenter(ctx context.Context, cc domain.CostCenter) error

	// DeleteCostCenter removes a cost center. References from transactions
	// and bills are set to null, not cascaded.
	DeleteCostCenter(ctx context.Context, userID string, costCenterID string) error
}

// CostCenterRepositoryFacade combines all cost-center repository interfaces
type CostCenterRepositoryFacade interface {
	CostCenterReader
	CostCenterWriter
}
