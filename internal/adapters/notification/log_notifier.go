// Package notification delivers party notifications.
package notification

import (
	"context"
	"log/slog"

	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/middleware"
)

// LogNotifier writes each notification as a structured log record. It stands in
// for a delivery channel until one is configured.
type LogNotifier struct{}

var _ portssvc.Notifier = LogNotifier{}

// Notify logs n and never fails.
func (LogNotifier) Notify(ctx context.Context, n domain.Notification) error {
	attrs := []any{
		slog.String("user_id", n.UserID),
		slog.String("title", n.Title),
		slog.String("type", n.Type),
		slog.Bool("requires_action", n.RequiresAction),
	}
	if n.InvoiceID != nil {
		attrs = append(attrs, slog.String("invoice_id", *n.InvoiceID))
	}
	middleware.GetLoggerFromCtx(ctx).Info(n.Message, attrs...)
	return nil
}
