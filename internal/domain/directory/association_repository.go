package directory

import (
	"context"
)

// AssociationRepository stores party to FSP associations for the built-in
// oracle provider. Queries are exact-tuple matches only.
type AssociationRepository interface {
	// Save persists a new association; returns an ASSOCIATION_ALREADY_EXISTS
	// domain error when the exact tuple is already stored
	Save(ctx context.Context, association *Association) error

	// FindFspID returns the FSP owning the party, or nil when no
	// association exists (absence is not an error)
	FindFspID(ctx context.Context, party PartyLookup) (*string, error)

	// Delete removes the association matching the exact tuple; returns an
	// ASSOCIATION_NOT_FOUND domain error when nothing matches
	Delete(ctx context.Context, fspID string, party PartyLookup) error

	// FindAllByPartyType returns every association owned by the oracle
	// routing the given party type
	FindAllByPartyType(ctx context.Context, partyType string) ([]Association, error)
}
