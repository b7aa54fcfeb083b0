package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoice_finance_app/internal/apperrors"
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoice_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoice_finance_app/internal/middleware"
	"github.com/google/uuid"
)

// ChartOfAccounts resolves account codes to persisted accounts. It is built once
// at startup and read-only afterwards.
type ChartOfAccounts struct {
	byCode map[domain.AccountCode]domain.Account
}

// EnsureChartOfAccounts creates any chart account that does not exist yet and
// returns the registry of all of them.
func EnsureChartOfAccounts(ctx context.Context, tm portsrepo.TransactionManager, userID string) (*ChartOfAccounts, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	chart := &ChartOfAccounts{byCode: make(map[domain.AccountCode]domain.Account)}
	now := time.Now().UTC()

	err := tm.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		for _, def := range domain.ChartOfAccounts() {
			acc, err := repos.AccountRepo.FindAccountByCode(ctx, def.Code)
			if err == nil {
				chart.byCode[def.Code] = *acc
				continue
			}
			if !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to look up account %s: %w", def.Code, err)
			}
			created := domain.Account{
				AccountID:   uuid.NewString(),
				Code:        def.Code,
				Name:        def.Name,
				AccountType: def.Type,
				Category:    def.Category,
				IsActive:    true,
				AuditFields: domain.NewAuditFields(userID, now),
			}
			if err := repos.AccountRepo.SaveAccount(ctx, created); err != nil {
				return fmt.Errorf("failed to create account %s: %w", def.Code, err)
			}
			logger.Info("Created chart account", slog.String("code", string(def.Code)), slog.String("name", def.Name))
			chart.byCode[def.Code] = created
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chart, nil
}

// AccountID returns the identifier of the account registered under code.
func (c *ChartOfAccounts) AccountID(code domain.AccountCode) (string, error) {
	acc, ok := c.byCode[code]
	if !ok {
		return "", fmt.Errorf("%w: account code %s is not in the chart", apperrors.ErrNotFound, code)
	}
	return acc.AccountID, nil
}
