package provider

import (
	"context"
	"sync/atomic"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"go.uber.org/zap"
)

// BuiltinProvider serves an oracle from this service's own association
// store. All built-in oracles share the store; each provider instance only
// sees the associations of the party type its oracle routes.
type BuiltinProvider struct {
	oracle       *directory.Oracle
	associations directory.AssociationRepository
	pinger       Pinger
	logger       *zap.Logger
	destroyed    atomic.Bool
}

// NewBuiltinProvider creates a provider backed by the local association store
func NewBuiltinProvider(oracle *directory.Oracle, associations directory.AssociationRepository, pinger Pinger, logger *zap.Logger) *BuiltinProvider {
	return &BuiltinProvider{
		oracle:       oracle,
		associations: associations,
		pinger:       pinger,
		logger:       logger,
	}
}

// Init verifies the backing store is reachable
func (p *BuiltinProvider) Init(ctx context.Context) error {
	if err := p.pinger.Ping(); err != nil {
		return directory.NewProviderInitError(err.Error())
	}
	p.logger.Debug("builtin oracle provider initialized",
		zap.String("oracle", p.oracle.Name),
		zap.String("party_type", p.oracle.PartyType),
	)
	return nil
}

// Destroy releases the provider. The store connection is shared and owned by
// the process, so there is nothing to close; repeated calls are safe.
func (p *BuiltinProvider) Destroy(ctx context.Context) error {
	p.destroyed.Store(true)
	return nil
}

// HealthCheck reports store reachability; never returns an error
func (p *BuiltinProvider) HealthCheck(ctx context.Context) bool {
	if p.destroyed.Load() {
		return false
	}
	return p.pinger.Ping() == nil
}

// GetParticipantFspID returns the FSP owning the party, or nil when absent
func (p *BuiltinProvider) GetParticipantFspID(ctx context.Context, party directory.PartyLookup) (*string, error) {
	return p.associations.FindFspID(ctx, party)
}

// AssociateParticipant persists a new association for the party
func (p *BuiltinProvider) AssociateParticipant(ctx context.Context, fspID string, party directory.PartyLookup) error {
	association, err := directory.NewAssociation(fspID, party)
	if err != nil {
		return err
	}
	return p.associations.Save(ctx, association)
}

// DisassociateParticipant removes the association matching the exact tuple
func (p *BuiltinProvider) DisassociateParticipant(ctx context.Context, fspID string, party directory.PartyLookup) error {
	return p.associations.Delete(ctx, fspID, party)
}

// GetAllAssociations returns every association this oracle owns
func (p *BuiltinProvider) GetAllAssociations(ctx context.Context) ([]directory.Association, error) {
	return p.associations.FindAllByPartyType(ctx, p.oracle.PartyType)
}

// Ensure BuiltinProvider implements directory.OracleProvider
var _ directory.OracleProvider = (*BuiltinProvider)(nil)
