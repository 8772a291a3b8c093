package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	bankRepo := newSQLiteBankRepository(db)
	billingRepo := newSQLiteBillingRepository(db, bankRepo)
	costCenterRepo := newSQLiteCostCenterRepository(db)
	settingsRepo := newSQLiteSettingsRepository(db)
	reportingRepo := newSQLiteReportingRepository(db)
	userRepo := newSQLiteUserRepository(db)

	return portsrepo.RepositoryProvider{
		BankRepo:       bankRepo,
		BillingRepo:    billingRepo,
		CostCenterRepo: costCenterRepo,
		SettingsRepo:   settingsRepo,
		ReportingRepo:  reportingRepo,
		UserRepo:       userRepo,
	}
}
