package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
	"github.com/SscSPs/personal_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_app/internal/models"
	"github.com/SscSPs/personal_finance_app/internal/utils/mapping"
)

const costCenterColumns = `cost_center_id, user_id, name, group_name, cost_center, area, state, created_at`

type SQLiteCostCenterRepository struct {
	BaseRepository
}

// newSQLiteCostCenterRepository creates a new repository for cost center data.
func newSQLiteCostCenterRepository(db *sql.DB) portsrepo.CostCenterRepositoryFacade {
	return &SQLiteCostCenterRepository{BaseRepository{DB: db}}
}

var _ portsrepo.CostCenterRepositoryFacade = (*SQLiteCostCenterRepository)(nil)

func scanCostCenter(row interface{ Scan(...any) error }) (*domain.CostCenter, error) {
	var m models.CostCenter
	var userID sql.NullString
	err := row.Scan(
		&m.CostCenterID,
		&userID,
		&m.Name,
		&m.GroupName,
		&m.CostCenter,
		&m.Area,
		&m.State,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		m.UserID = &userID.String
	}
	cc := mapping.ToDomainCostCenter(m)
	return &cc, nil
}

// SaveCostCenter persists a new cost center.
func (r *SQLiteCostCenterRepository) SaveCostCenter(ctx context.Context, cc domain.CostCenter) error {
	query := `
		INSERT INTO cost_centers (` + costCenterColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.DB.ExecContext(ctx, query,
		cc.CostCenterID,
		nullable(cc.UserID),
		cc.Name,
		cc.GroupName,
		cc.CostCenter,
		cc.Area,
		string(cc.State),
		cc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save cost center %s: %w", cc.CostCenterID, err)
	}
	return nil
}

// FindCostCenterByID retrieves a cost center owned by the user or global.
func (r *SQLiteCostCenterRepository) FindCostCenterByID(ctx context.Context, userID string, costCenterID string) (*domain.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM cost_centers
		WHERE cost_center_id = ? AND (user_id = ? OR user_id IS NULL);
	`
	cc, err := scanCostCenter(r.DB.QueryRowContext(ctx, query, costCenterID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost center by ID %s: %w", costCenterID, err)
	}
	return cc, nil
}

// ListCostCenters retrieves the cost centers visible to the given user.
func (r *SQLiteCostCenterRepository) ListCostCenters(ctx context.Context, userID string) ([]domain.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM cost_centers
		WHERE user_id = ? OR user_id IS NULL
		ORDER BY group_name, cost_center;
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost centers for user %s: %w", userID, err)
	}
	defer rows.Close()

	ccs := []domain.CostCenter{}
	for rows.Next() {
		cc, err := scanCostCenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost center row for user %s: %w", userID, err)
		}
		ccs = append(ccs, *cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cost center rows for user %s: %w", userID, err)
	}
	return ccs, nil
}

// UpdateCostCenter updates a user-owned cost center. Global cost centers
// are read-only through this path.
func (r *SQLiteCostCenterRepository) UpdateCostCenter(ctx context.Context, cc domain.CostCenter) error {
	if cc.UserID == nil {
		return apperrors.ErrNotFound
	}
	query := `
		UPDATE cost_centers
		SET name = ?, group_name = ?, cost_center = ?, area = ?, state = ?
		WHERE cost_center_id = ? AND user_id = ?;
	`
	res, err := r.DB.ExecContext(ctx, query,
		cc.Name,
		cc.GroupName,
		cc.CostCenter,
		cc.Area,
		string(cc.State),
		cc.CostCenterID,
		*cc.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cost center %s: %w", cc.CostCenterID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for cost center %s: %w", cc.CostCenterID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCostCenter removes a user-owned cost center. Transaction and bill
// references are set to null by the FK.
func (r *SQLiteCostCenterRepository) DeleteCostCenter(ctx context.Context, userID string, costCenterID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM cost_centers WHERE cost_center_id = ? AND user_id = ?;`, costCenterID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cost center %s: %w", costCenterID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for cost center %s: %w", costCenterID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
