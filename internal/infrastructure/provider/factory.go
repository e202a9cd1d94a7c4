package provider

import (
	"time"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"go.uber.org/zap"
)

// Factory constructs the provider variant matching an oracle's type. The
// variants are composed independently against the OracleProvider contract;
// selection is keyed on the oracle's type field alone.
type Factory struct {
	associations   directory.AssociationRepository
	pinger         Pinger
	requestTimeout time.Duration
	logger         *zap.Logger
}

// NewFactory creates a provider factory
func NewFactory(associations directory.AssociationRepository, pinger Pinger, requestTimeout time.Duration, logger *zap.Logger) *Factory {
	return &Factory{
		associations:   associations,
		pinger:         pinger,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

// Create builds an uninitialized provider for the oracle; fails with an
// ORACLE_TYPE_UNSUPPORTED domain error for unknown types
func (f *Factory) Create(oracle *directory.Oracle) (directory.OracleProvider, error) {
	switch oracle.Type {
	case directory.OracleTypeBuiltin:
		return NewBuiltinProvider(oracle, f.associations, f.pinger, f.logger), nil
	case directory.OracleTypeRemoteHTTP:
		return NewRemoteProvider(oracle, f.requestTimeout, f.logger)
	default:
		return nil, directory.NewUnsupportedOracleTypeError(string(oracle.Type))
	}
}

// Ensure Factory implements ProviderFactory
var _ ProviderFactory = (*Factory)(nil)
