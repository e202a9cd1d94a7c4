package directory

import (
	"context"

	"github.com/google/uuid"
)

// OracleProvider is the common contract every oracle backend fulfils,
// parameterized by the oracle it was constructed for. Failure semantics are
// uniform regardless of backend: a remote oracle maps HTTP failures onto the
// same domain error codes the built-in store produces.
type OracleProvider interface {
	// Init acquires the backing resource; fails with an
	// ORACLE_PROVIDER_INIT_FAILED domain error when it cannot be reached
	Init(ctx context.Context) error

	// Destroy releases the backing resource; safe to call at least once
	Destroy(ctx context.Context) error

	// HealthCheck reports backend reachability; never returns an error,
	// unreachability reads as false
	HealthCheck(ctx context.Context) bool

	// GetParticipantFspID returns the FSP associated with the party, or
	// nil when no association exists (absence is not an error)
	GetParticipantFspID(ctx context.Context, party PartyLookup) (*string, error)

	// AssociateParticipant persists a new association; fails with an
	// ASSOCIATION_ALREADY_EXISTS domain error on a duplicate tuple
	AssociateParticipant(ctx context.Context, fspID string, party PartyLookup) error

	// DisassociateParticipant removes an association; fails with an
	// ASSOCIATION_NOT_FOUND domain error when no tuple matches
	DisassociateParticipant(ctx context.Context, fspID string, party PartyLookup) error

	// GetAllAssociations returns the full set of associations owned by
	// this provider, for auditing
	GetAllAssociations(ctx context.Context) ([]Association, error)
}

// ProviderSource hands out the initialized provider bound to an oracle and
// tears providers down when their oracle is removed.
type ProviderSource interface {
	ProviderFor(ctx context.Context, oracle *Oracle) (OracleProvider, error)
	Invalidate(ctx context.Context, oracleID uuid.UUID)
}
