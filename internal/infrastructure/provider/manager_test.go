package provider

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingFactory counts Create calls and hands out builtin providers
type recordingFactory struct {
	creates atomic.Int32
	initErr error
}

func (f *recordingFactory) Create(oracle *directory.Oracle) (directory.OracleProvider, error) {
	if err := directory.ValidateOracleType(oracle.Type); err != nil {
		return nil, err
	}
	f.creates.Add(1)
	return NewBuiltinProvider(oracle, new(MockAssociationRepository), &stubPinger{err: f.initErr}, zap.NewNop()), nil
}

func TestManager_ProviderFor(t *testing.T) {
	ctx := context.Background()

	t.Run("constructs and caches one provider per oracle", func(t *testing.T) {
		factory := &recordingFactory{}
		manager := NewManager(factory, zap.NewNop())
		oracle := newBuiltinOracle(t)

		first, err := manager.ProviderFor(ctx, oracle)
		require.NoError(t, err)
		second, err := manager.ProviderFor(ctx, oracle)
		require.NoError(t, err)

		assert.Same(t, first, second, "repeated calls must reuse the cached provider")
		assert.Equal(t, int32(1), factory.creates.Load())
		assert.Equal(t, 1, manager.Size())
	})

	t.Run("does not cache a provider that fails to init", func(t *testing.T) {
		factory := &recordingFactory{initErr: assert.AnError}
		manager := NewManager(factory, zap.NewNop())

		_, err := manager.ProviderFor(ctx, newBuiltinOracle(t))
		require.Error(t, err)
		assert.Equal(t, directory.ErrCodeProviderInitFailed, directory.ErrorCode(err))
		assert.Equal(t, 0, manager.Size())
	})

	t.Run("propagates unsupported type from the factory", func(t *testing.T) {
		factory := &recordingFactory{}
		manager := NewManager(factory, zap.NewNop())
		oracle := newBuiltinOracle(t)
		oracle.Type = directory.OracleType("carrier-pigeon")

		_, err := manager.ProviderFor(ctx, oracle)
		require.Error(t, err)
		assert.Equal(t, directory.ErrCodeOracleTypeUnsupported, directory.ErrorCode(err))
	})
}

func TestManager_Invalidate(t *testing.T) {
	ctx := context.Background()
	factory := &recordingFactory{}
	manager := NewManager(factory, zap.NewNop())
	oracle := newBuiltinOracle(t)

	_, err := manager.ProviderFor(ctx, oracle)
	require.NoError(t, err)
	require.Equal(t, 1, manager.Size())

	manager.Invalidate(ctx, oracle.ID)
	assert.Equal(t, 0, manager.Size())

	// Invalidating an unknown oracle is a no-op
	manager.Invalidate(ctx, oracle.ID)

	// The next request constructs a fresh provider
	_, err = manager.ProviderFor(ctx, oracle)
	require.NoError(t, err)
	assert.Equal(t, int32(2), factory.creates.Load())
}

func TestManager_Shutdown(t *testing.T) {
	ctx := context.Background()
	factory := &recordingFactory{}
	manager := NewManager(factory, zap.NewNop())

	oracleA := newBuiltinOracle(t)
	oracleB, err := directory.NewBuiltinOracle("builtin-iban", "IBAN", nil)
	require.NoError(t, err)

	_, err = manager.ProviderFor(ctx, oracleA)
	require.NoError(t, err)
	_, err = manager.ProviderFor(ctx, oracleB)
	require.NoError(t, err)
	require.Equal(t, 2, manager.Size())

	manager.Shutdown(ctx)
	assert.Equal(t, 0, manager.Size())
}
