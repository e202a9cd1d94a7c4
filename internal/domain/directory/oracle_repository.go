package directory

import (
	"context"

	"github.com/finswitch/account-lookup/internal/domain/shared"
	"github.com/google/uuid"
)

// OracleRepository is the registry of oracle routing rules. The registry is
// the consistent source of truth for routing: a read issued after a completed
// mutation always observes that mutation.
type OracleRepository interface {
	// Save persists a new oracle; the caller pre-checks id/name uniqueness,
	// the store's constraints are the final arbiter
	Save(ctx context.Context, oracle *Oracle) error

	// Delete removes an oracle; returns an ORACLE_NOT_FOUND domain error
	// when the id is unknown
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns nil (not an error) when the id is unknown
	FindByID(ctx context.Context, id uuid.UUID) (*Oracle, error)

	// FindByName returns nil (not an error) when the name is unknown
	FindByName(ctx context.Context, name string) (*Oracle, error)

	// FindAll returns all registered oracles; empty slice when none exist
	FindAll(ctx context.Context, filter shared.Filter) ([]Oracle, error)

	// Count returns the number of registered oracles
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindForRouting resolves the oracle owning a party type and currency:
	// an exact (partyType, currency) match wins, otherwise an oracle
	// registered for the party type with no currency acts as the wildcard.
	// Returns an ORACLE_NOT_FOUND domain error when neither exists.
	FindForRouting(ctx context.Context, partyType string, currency *string) (*Oracle, error)

	// ExistsByID checks id uniqueness before registration
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByName checks name uniqueness before registration
	ExistsByName(ctx context.Context, name string) (bool, error)
}
