package provider

import (
	"context"
	"sync"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager caches one initialized provider per oracle id. Providers are
// constructed lazily on first use and torn down when their oracle is removed
// or the process shuts down.
type Manager struct {
	factory   ProviderFactory
	logger    *zap.Logger
	mu        sync.Mutex
	providers map[uuid.UUID]directory.OracleProvider
}

// NewManager creates a provider manager
func NewManager(factory ProviderFactory, logger *zap.Logger) *Manager {
	return &Manager{
		factory:   factory,
		logger:    logger,
		providers: make(map[uuid.UUID]directory.OracleProvider),
	}
}

// ProviderFor returns the initialized provider bound to the oracle,
// constructing and initializing it on first use
func (m *Manager) ProviderFor(ctx context.Context, oracle *directory.Oracle) (directory.OracleProvider, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.providers[oracle.ID]; ok {
		return p, nil
	}

	p, err := m.factory.Create(oracle)
	if err != nil {
		return nil, err
	}
	if err := p.Init(ctx); err != nil {
		return nil, err
	}

	m.providers[oracle.ID] = p
	m.logger.Info("oracle provider initialized",
		zap.String("oracle_id", oracle.ID.String()),
		zap.String("oracle", oracle.Name),
		zap.String("type", string(oracle.Type)),
	)
	return p, nil
}

// Invalidate tears down the cached provider for an oracle, if any. Called
// when the oracle is removed from the registry.
func (m *Manager) Invalidate(ctx context.Context, oracleID uuid.UUID) {
	m.mu.Lock()
	p, ok := m.providers[oracleID]
	if ok {
		delete(m.providers, oracleID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	if err := p.Destroy(ctx); err != nil {
		m.logger.Warn("failed to destroy oracle provider",
			zap.String("oracle_id", oracleID.String()),
			zap.Error(err),
		)
	}
}

// Shutdown tears down every cached provider
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	providers := m.providers
	m.providers = make(map[uuid.UUID]directory.OracleProvider)
	m.mu.Unlock()

	for id, p := range providers {
		if err := p.Destroy(ctx); err != nil {
			m.logger.Warn("failed to destroy oracle provider",
				zap.String("oracle_id", id.String()),
				zap.Error(err),
			)
		}
	}
}

// Size returns the number of cached providers (for testing/monitoring)
func (m *Manager) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.providers)
}

// Ensure Manager implements directory.ProviderSource
var _ directory.ProviderSource = (*Manager)(nil)
