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
	"github.com/shopspring/decimal"
)

// BankService owns bank accounts and the ledger primitives every
// balance-changing path goes through.
type BankService struct {
	BaseService
	bankRepo portsrepo.BankRepositoryWithTx
}

func NewBankService(repo portsrepo.BankRepositoryWithTx) *BankService {
	return &BankService{bankRepo: repo}
}

var _ portssvc.BankSvcFacade = (*BankService)(nil)

// CreateBank persists a new bank with an optional opening balance.
func (s *BankService) CreateBank(ctx context.Context, userID string, req dto.CreateBankRequest) (*domain.Bank, error) {
	now := time.Now()

	role := req.Role
	if role == "" {
		role = domain.RoleChecking
	}
	currency := req.CurrencyCode
	if currency == "" {
		currency = "EUR"
	}

	bank := domain.Bank{
		BankID:        uuid.NewString(),
		UserID:        userID,
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		CurrencyCode:  currency,
		Balance:       req.Balance,
		Role:          role,
		Color:         req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save bank in repository", slog.String("bank_id", bank.BankID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Bank created", slog.String("bank_id", bank.BankID))
	return &bank, nil
}

// GetBankByID retrieves a bank owned by the given user.
func (s *BankService) GetBankByID(ctx context.Context, userID string, bankID string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, userID, bankID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank by ID in repository", slog.String("bank_id", bankID))
		}
		return nil, err
	}
	return bank, nil
}

// ListBanks retrieves all banks owned by the given user.
func (s *BankService) ListBanks(ctx context.Context, userID string) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanksByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks from repository")
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}

// UpdateBank updates a bank's details. Balance is not updatable here.
func (s *BankService) UpdateBank(ctx context.Context, userID string, bankID string, req dto.UpdateBankRequest) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, userID, bankID)
	if err != nil {
		return nil, err
	}

	if req.BankName != nil {
		bank.BankName = *req.BankName
	}
	if req.AccountName != nil {
		bank.AccountName = *req.AccountName
	}
	if req.AccountNumber != nil {
		bank.AccountNumber = *req.AccountNumber
	}
	if req.CurrencyCode != nil {
		bank.CurrencyCode = *req.CurrencyCode
	}
	if req.Role != nil {
		bank.Role = *req.Role
	}
	if req.Color != nil {
		bank.Color = *req.Color
	}
	bank.LastUpdatedAt = time.Now()
	bank.LastUpdatedBy = userID

	if err := s.bankRepo.UpdateBank(ctx, *bank); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update bank in repository", slog.String("bank_id", bankID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Bank updated", slog.String("bank_id", bankID))
	return bank, nil
}

// DeleteBank removes a bank and everything recorded against it.
func (s *BankService) DeleteBank(ctx context.Context, userID string, bankID string) error {
	if err := s.bankRepo.DeleteBank(ctx, userID, bankID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete bank in repository", slog.String("bank_id", bankID))
		}
		return err
	}
	s.LogInfo(ctx, "Bank deleted", slog.String("bank_id", bankID))
	return nil
}

// ApplyDelta adjusts a bank's balance by a signed amount in a single store
// transaction and returns the new balance.
func (s *BankService) ApplyDelta(ctx context.Context, userID string, bankID string, delta decimal.Decimal) (decimal.Decimal, error) {
	tx, err := s.bankRepo.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer s.bankRepo.Rollback(ctx, tx)

	bank, err := s.bankRepo.FindBankByIDForUpdate(ctx, tx, userID, bankID)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance := bank.Balance.Add(delta)
	if err := s.bankRepo.UpdateBankBalanceInTx(ctx, tx, bankID, newBalance, userID, time.Now()); err != nil {
		return decimal.Zero, err
	}
	if err := s.bankRepo.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}

	s.LogDebug(ctx, "Balance delta applied", slog.String("bank_id", bankID), slog.String("delta", delta.String()))
	return newBalance, nil
}

// SnapshotBeforeAfter reads the bank's current balance and computes the
// balance a record with the given state/amount/fee would produce. No write.
func (s *BankService) SnapshotBeforeAfter(ctx context.Context, userID string, bankID string, state domain.TransactionState, amount, fee decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if !state.Valid() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidState, state)
	}
	if amount.IsNegative() || fee.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: amount and fee must be non-negative", apperrors.ErrValidation)
	}

	bank, err := s.bankRepo.FindBankByID(ctx, userID, bankID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	before := bank.Balance
	after := before.Add(state.SignedDelta(amount, fee))
	return before, after, nil
}

// Reverse sets a bank's balance back to an explicit prior value.
func (s *BankService) Reverse(ctx context.Context, userID string, bankID string, before decimal.Decimal) error {
	tx, err := s.bankRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.bankRepo.Rollback(ctx, tx)

	if _, err := s.bankRepo.FindBankByIDForUpdate(ctx, tx, userID, bankID); err != nil {
		return err
	}
	if err := s.bankRepo.UpdateBankBalanceInTx(ctx, tx, bankID, before, userID, time.Now()); err != nil {
		return err
	}
	if err := s.bankRepo.Commit(ctx, tx); err != nil {
		return err
	}

	s.LogDebug(ctx, "Balance reversed", slog.String("bank_id", bankID), slog.String("balance", before.String()))
	return nil
}
