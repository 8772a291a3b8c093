package services

import (
	"github.com/SscSPs/personal_finance_app/internal/audit"
	portsrepo "github.com/SscSPs/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/platform/config"
)

// NewServiceContainer wires all services over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	autoSaver := audit.NewMonthlyAutoSaver(cfg.AutoSaveDir)
	googleAuthSvc := NewGoogleAuthService(cfg)

	return &portssvc.ServiceContainer{
		Bank:       NewBankService(repos.BankRepo),
		Billing:    NewBillingService(repos.BillingRepo, repos.BankRepo, repos.CostCenterRepo, autoSaver, cfg.ExportDir),
		CostCenter: NewCostCenterService(repos.CostCenterRepo),
		Settings:   NewSettingsService(repos.SettingsRepo),
		User:       NewUserService(repos.UserRepo, googleAuthSvc),
		Token:      NewTokenService(cfg),
		GoogleAuth: googleAuthSvc,
		Reporting:  NewReportingService(repos.ReportingRepo, repos.BankRepo, repos.BillingRepo),
	}
}
