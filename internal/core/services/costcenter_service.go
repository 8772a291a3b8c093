package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/google/uuid"
)

// CostCenterService manages categorization tags for transactions and bills.
type CostCenterService struct {
	BaseService
	costCenterRepo portsrepo.CostCenterRepositoryFacade
}

func NewCostCenterService(repo portsrepo.CostCenterRepositoryFacade) *CostCenterService {
	return &CostCenterService{costCenterRepo: repo}
}

var _ portssvc.CostCenterSvcFacade = (*CostCenterService)(nil)

// combinedName builds the display name from the three labels.
func combinedName(group, costCenter, area string) string {
	return fmt.Sprintf("%s,%s,%s", group, costCenter, area)
}

// CreateCostCenter persists a new user-owned cost center. The state tag is
// optional; when present it must be Income or Expense.
func (s *CostCenterService) CreateCostCenter(ctx context.Context, userID string, req dto.CreateCostCenterRequest) (*domain.CostCenter, error) {
	state := domain.TransactionState(req.State)
	if req.State != "" && !state.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidState, req.State)
	}

	cc := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		UserID:       &userID,
		Name:         combinedName(req.GroupName, req.CostCenter, req.Area),
		GroupName:    req.GroupName,
		CostCenter:   req.CostCenter,
		Area:         req.Area,
		State:        state,
		CreatedAt:    time.Now(),
	}

	if err := s.costCenterRepo.SaveCostCenter(ctx, cc); err != nil {
		s.LogError(ctx, err, "Failed to save cost center", slog.String("cost_center_id", cc.CostCenterID))
		return nil, err
	}

	s.LogInfo(ctx, "Cost center created", slog.String("cost_center_id", cc.CostCenterID))
	return &cc, nil
}

// GetCostCenterByID retrieves a cost center visible to the given user.
func (s *CostCenterService) GetCostCenterByID(ctx context.Context, userID string, costCenterID string) (*domain.CostCenter, error) {
	cc, err := s.costCenterRepo.FindCostCenterByID(ctx, userID, costCenterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cost center", slog.String("cost_center_id", costCenterID))
		}
		return nil, err
	}
	return cc, nil
}

// ListCostCenters retrieves the cost centers visible to the given user.
func (s *CostCenterService) ListCostCenters(ctx context.Context, userID string) ([]domain.CostCenter, error) {
	ccs, err := s.costCenterRepo.ListCostCenters(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cost centers")
		return nil, err
	}
	if ccs == nil {
		return []domain.CostCenter{}, nil
	}
	return ccs, nil
}

// UpdateCostCenter updates a cost center owned by the given user.
func (s *CostCenterService) UpdateCostCenter(ctx context.Context, userID string, costCenterID string, req dto.UpdateCostCenterRequest) (*domain.CostCenter, error) {
	cc, err := s.costCenterRepo.FindCostCenterByID(ctx, userID, costCenterID)
	if err != nil {
		return nil, err
	}
	if cc.UserID == nil {
		// Global cost centers are not editable by individual users.
		return nil, apperrors.ErrNotFound
	}

	if req.GroupName != nil {
		cc.GroupName = *req.GroupName
	}
	if req.CostCenter != nil {
		cc.CostCenter = *req.CostCenter
	}
	if req.Area != nil {
		cc.Area = *req.Area
	}
	if req.State != nil {
		state := domain.TransactionState(*req.State)
		if *req.State != "" && !state.Valid() {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidState, *req.State)
		}
		cc.State = state
	}
	cc.Name = combinedName(cc.GroupName, cc.CostCenter, cc.Area)

	if err := s.costCenterRepo.UpdateCostCenter(ctx, *cc); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update cost center", slog.String("cost_center_id", costCenterID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cost center updated", slog.String("cost_center_id", costCenterID))
	return cc, nil
}

// DeleteCostCenter removes a cost center; references are detached, not
// cascaded.
func (s *CostCenterService) DeleteCostCenter(ctx context.Context, userID string, costCenterID string) error {
	if err := s.costCenterRepo.DeleteCostCenter(ctx, userID, costCenterID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete cost center", slog.String("cost_center_id", costCenterID))
		}
		return err
	}
	s.LogInfo(ctx, "Cost center deleted", slog.String("cost_center_id", costCenterID))
	return nil
}
