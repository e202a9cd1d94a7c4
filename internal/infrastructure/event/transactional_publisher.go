package event

import (
	"context"

	"github.com/finswitch/account-lookup/internal/domain/shared"
	"gorm.io/gorm"
)

// TxRunner runs a function inside a database transaction.
// *persistence.Database satisfies this.
type TxRunner interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

// TransactionalPublisher adapts the outbox publisher to the plain
// EventPublisher interface by opening its own transaction per publish.
// Callers that already hold a transaction should use PublishWithTx on
// the outbox publisher directly instead.
type TransactionalPublisher struct {
	db     TxRunner
	outbox *OutboxPublisher
}

// NewTransactionalPublisher creates a publisher that writes events to the
// outbox table in a dedicated transaction
func NewTransactionalPublisher(db TxRunner, outbox *OutboxPublisher) *TransactionalPublisher {
	return &TransactionalPublisher{
		db:     db,
		outbox: outbox,
	}
}

// Publish persists the events to the outbox; the outbox processor relays
// them to subscribers asynchronously
func (p *TransactionalPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	return p.db.Transaction(func(tx *gorm.DB) error {
		return p.outbox.PublishWithTx(ctx, tx, events...)
	})
}

// Ensure TransactionalPublisher implements EventPublisher
var _ shared.EventPublisher = (*TransactionalPublisher)(nil)
