package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/finswitch/account-lookup/internal/domain/shared"
	"github.com/finswitch/account-lookup/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LookupService coordinates party resolution: it routes a party to its
// oracle, dispatches to the oracle's provider, and keeps the result cache
// and outbound events consistent with what the provider reported.
type LookupService struct {
	oracles   directory.OracleRepository
	providers directory.ProviderSource
	cache     directory.ResultCache
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewLookupService creates a new LookupService
func NewLookupService(
	oracles directory.OracleRepository,
	providers directory.ProviderSource,
	cache directory.ResultCache,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *LookupService {
	return &LookupService{
		oracles:   oracles,
		providers: providers,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}
}

// =============================================================================
// Party resolution
// =============================================================================

// LookupParticipant resolves the FSP owning a single party. Routing and
// provider errors propagate unchanged; a party no participant owns is an
// error, not a nil result.
func (s *LookupService) LookupParticipant(ctx context.Context, req PartyLookupRequest) (*PartyLookupResponse, error) {
	party, err := directory.NewPartyLookup(req.PartyType, req.PartyID, req.PartySubType, req.Currency)
	if err != nil {
		return nil, err
	}

	fspID, err := s.resolve(ctx, party)
	if err != nil {
		return nil, err
	}
	if fspID == nil {
		return nil, directory.NewParticipantNotFoundError(party.PartyType, party.PartyID)
	}

	s.publish(ctx, directory.NewPartyResolvedEvent(requestContext(party, req.RequesterFspID), *fspID))

	return &PartyLookupResponse{
		PartyType:    party.PartyType,
		PartyID:      party.PartyID,
		PartySubType: party.PartySubType,
		Currency:     party.Currency,
		FspID:        fspID,
	}, nil
}

// LookupParticipants resolves a batch of parties concurrently. Failures are
// isolated per entry: an entry that cannot be resolved, for any reason,
// appears in the result with a nil fsp id. Every submitted request id is
// present in the result.
func (s *LookupService) LookupParticipants(ctx context.Context, req BulkLookupRequest) (*BulkLookupResponse, error) {
	results := make(map[string]*string, len(req.Parties))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for id, entry := range req.Parties {
		wg.Add(1)
		go func(id string, entry PartyLookupRequest) {
			defer wg.Done()

			fspID := s.resolveEntry(ctx, entry)

			mu.Lock()
			results[id] = fspID
			mu.Unlock()
		}(id, entry)
	}
	wg.Wait()

	s.publish(ctx, directory.NewBulkPartyResolvedEvent(req.RequesterFspID, results))

	return &BulkLookupResponse{Results: results}, nil
}

// resolveEntry resolves one bulk entry, degrading every failure to nil
func (s *LookupService) resolveEntry(ctx context.Context, entry PartyLookupRequest) *string {
	party, err := directory.NewPartyLookup(entry.PartyType, entry.PartyID, entry.PartySubType, entry.Currency)
	if err != nil {
		s.logger.Debug("bulk lookup entry rejected",
			zap.String("party_type", entry.PartyType),
			zap.String("party_id", entry.PartyID),
			zap.Error(err),
		)
		return nil
	}

	fspID, err := s.resolve(ctx, party)
	if err != nil {
		s.logger.Debug("bulk lookup entry failed",
			zap.String("party_type", party.PartyType),
			zap.String("party_id", party.PartyID),
			zap.Error(err),
		)
		return nil
	}
	return fspID
}

// resolve performs one routed lookup: oracle routing first, then the cache
// fast path, then provider dispatch. Routing runs before the cache so that a
// cached resolution stops answering the moment its oracle is gone. A nil
// result means the party has no owner.
func (s *LookupService) resolve(ctx context.Context, party directory.PartyLookup) (*string, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "lookup", "resolve")
	defer span.End()
	telemetry.SetAttribute(span, telemetry.SpanAttrPartyType, party.PartyType)

	oracle, err := s.oracles.FindForRouting(ctx, party.PartyType, party.Currency)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrOracleID, oracle.ID.String(),
		telemetry.SpanAttrOracleType, string(oracle.Type),
	)

	key := party.CacheKey()

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("result cache read failed", zap.String("key", key), zap.Error(err))
	} else if cached != nil {
		telemetry.SetAttribute(span, telemetry.SpanAttrCacheHit, true)
		return cached, nil
	}

	provider, err := s.providers.ProviderFor(ctx, oracle)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	fspID, err := provider.GetParticipantFspID(ctx, party)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if fspID != nil {
		// The cache is a fast path only; a failed set never fails the lookup.
		// A concurrent lookup may have set the key first, which is fine.
		if err := s.cache.Set(ctx, key, *fspID); err != nil &&
			!directory.HasErrorCode(err, directory.ErrCodeCacheKeyExists) {
			s.logger.Warn("result cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return fspID, nil
}

// =============================================================================
// Association management
// =============================================================================

// AssociateParticipant registers a party as owned by an FSP via the oracle
// routing the party. Provider failures, including duplicates, surface as
// UNABLE_TO_ASSOCIATE.
func (s *LookupService) AssociateParticipant(ctx context.Context, req AssociateParticipantRequest) error {
	party, err := directory.NewPartyLookup(req.PartyType, req.PartyID, req.PartySubType, req.Currency)
	if err != nil {
		return err
	}

	oracle, err := s.oracles.FindForRouting(ctx, party.PartyType, party.Currency)
	if err != nil {
		return err
	}

	provider, err := s.providers.ProviderFor(ctx, oracle)
	if err != nil {
		return err
	}

	if err := provider.AssociateParticipant(ctx, req.FspID, party); err != nil {
		return directory.NewUnableToAssociateError(err)
	}

	s.invalidateCachedResult(ctx, party)
	s.publish(ctx, directory.NewParticipantAssociatedEvent(req.FspID, requestContext(party, req.FspID)))
	return nil
}

// DisassociateParticipant removes a party ownership claim via the oracle
// routing the party. Provider failures, including a missing association,
// surface as UNABLE_TO_DISASSOCIATE.
func (s *LookupService) DisassociateParticipant(ctx context.Context, req DisassociateParticipantRequest) error {
	party, err := directory.NewPartyLookup(req.PartyType, req.PartyID, req.PartySubType, req.Currency)
	if err != nil {
		return err
	}

	oracle, err := s.oracles.FindForRouting(ctx, party.PartyType, party.Currency)
	if err != nil {
		return err
	}

	provider, err := s.providers.ProviderFor(ctx, oracle)
	if err != nil {
		return err
	}

	if err := provider.DisassociateParticipant(ctx, req.FspID, party); err != nil {
		return directory.NewUnableToDisassociateError(err)
	}

	s.invalidateCachedResult(ctx, party)
	s.publish(ctx, directory.NewParticipantDisassociatedEvent(req.FspID, requestContext(party, req.FspID)))
	return nil
}

// invalidateCachedResult drops the cached resolution for a party whose
// ownership just changed
func (s *LookupService) invalidateCachedResult(ctx context.Context, party directory.PartyLookup) {
	if err := s.cache.Delete(ctx, party.CacheKey()); err != nil {
		s.logger.Warn("result cache invalidation failed",
			zap.String("key", party.CacheKey()),
			zap.Error(err),
		)
	}
}

// =============================================================================
// Oracle administration
// =============================================================================

// RegisterOracle registers a new oracle routing rule
func (s *LookupService) RegisterOracle(ctx context.Context, req CreateOracleRequest) (*OracleResponse, error) {
	oracleType := directory.OracleType(req.Type)
	if err := directory.ValidateOracleType(oracleType); err != nil {
		return nil, err
	}

	exists, err := s.oracles.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, directory.NewDuplicateOracleError(req.Name)
	}

	oracle, err := directory.NewOracle(req.Name, req.PartyType, oracleType, req.Currency, req.PartySubType, req.Endpoint)
	if err != nil {
		return nil, err
	}

	if err := s.oracles.Save(ctx, oracle); err != nil {
		return nil, err
	}

	s.publish(ctx, oracle.GetDomainEvents()...)
	oracle.ClearDomainEvents()

	response := ToOracleResponse(oracle)
	return &response, nil
}

// RemoveOracle deletes an oracle routing rule and tears down its provider
func (s *LookupService) RemoveOracle(ctx context.Context, oracleID uuid.UUID) error {
	oracle, err := s.oracles.FindByID(ctx, oracleID)
	if err != nil {
		return err
	}
	if oracle == nil {
		return directory.NewOracleNotFoundError(oracleID.String())
	}

	if err := s.oracles.Delete(ctx, oracleID); err != nil {
		return err
	}

	s.providers.Invalidate(ctx, oracleID)
	s.publish(ctx, directory.NewOracleRemovedEvent(oracle))
	return nil
}

// ListOracles retrieves registered oracles with filtering and pagination
func (s *LookupService) ListOracles(ctx context.Context, filter OracleListFilter) ([]OracleResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.PartyType != "" {
		domainFilter.Filters["party_type"] = filter.PartyType
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	oracles, err := s.oracles.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.oracles.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOracleResponses(oracles), total, nil
}

// GetOracleByID retrieves an oracle by id
func (s *LookupService) GetOracleByID(ctx context.Context, oracleID uuid.UUID) (*OracleResponse, error) {
	oracle, err := s.oracles.FindByID(ctx, oracleID)
	if err != nil {
		return nil, err
	}
	if oracle == nil {
		return nil, directory.NewOracleNotFoundError(oracleID.String())
	}

	response := ToOracleResponse(oracle)
	return &response, nil
}

// HealthCheckOracle reports the reachability of an oracle's backend. An
// unknown oracle id is an error; an unreachable backend is not, it reads as
// unhealthy.
func (s *LookupService) HealthCheckOracle(ctx context.Context, oracleID uuid.UUID) (*OracleHealthResponse, error) {
	oracle, err := s.oracles.FindByID(ctx, oracleID)
	if err != nil {
		return nil, err
	}
	if oracle == nil {
		return nil, directory.NewOracleNotFoundError(oracleID.String())
	}

	healthy := false
	provider, err := s.providers.ProviderFor(ctx, oracle)
	if err != nil {
		s.logger.Debug("oracle provider unavailable during health check",
			zap.String("oracle_id", oracleID.String()),
			zap.Error(err),
		)
	} else {
		healthy = provider.HealthCheck(ctx)
	}

	return &OracleHealthResponse{
		OracleID:  oracle.ID,
		Name:      oracle.Name,
		Healthy:   healthy,
		CheckedAt: time.Now().UTC(),
	}, nil
}

// GetOracleAssociations retrieves the full association set an oracle owns,
// for audit purposes
func (s *LookupService) GetOracleAssociations(ctx context.Context, oracleID uuid.UUID) ([]AssociationResponse, error) {
	oracle, err := s.oracles.FindByID(ctx, oracleID)
	if err != nil {
		return nil, err
	}
	if oracle == nil {
		return nil, directory.NewOracleNotFoundError(oracleID.String())
	}

	provider, err := s.providers.ProviderFor(ctx, oracle)
	if err != nil {
		return nil, err
	}

	associations, err := provider.GetAllAssociations(ctx)
	if err != nil {
		return nil, err
	}
	return ToAssociationResponses(associations), nil
}

// =============================================================================
// Helpers
// =============================================================================

// publish sends events best-effort; a publish failure never fails the
// operation whose outcome it reports
func (s *LookupService) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("failed to publish domain events", zap.Error(err))
	}
}

// requestContext builds the correlation context carried on lookup outcome events
func requestContext(party directory.PartyLookup, requesterFspID string) directory.LookupRequestContext {
	return directory.LookupRequestContext{
		PartyID:        party.PartyID,
		PartyType:      party.PartyType,
		PartySubType:   party.PartySubType,
		Currency:       party.Currency,
		RequesterFspID: requesterFspID,
	}
}
