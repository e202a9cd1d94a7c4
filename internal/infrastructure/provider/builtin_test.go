package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAssociationRepository is a mock implementation of directory.AssociationRepository
type MockAssociationRepository struct {
	mock.Mock
}

func (m *MockAssociationRepository) Save(ctx context.Context, association *directory.Association) error {
	args := m.Called(ctx, association)
	return args.Error(0)
}

func (m *MockAssociationRepository) FindFspID(ctx context.Context, party directory.PartyLookup) (*string, error) {
	args := m.Called(ctx, party)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockAssociationRepository) Delete(ctx context.Context, fspID string, party directory.PartyLookup) error {
	args := m.Called(ctx, fspID, party)
	return args.Error(0)
}

func (m *MockAssociationRepository) FindAllByPartyType(ctx context.Context, partyType string) ([]directory.Association, error) {
	args := m.Called(ctx, partyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Association), args.Error(1)
}

var _ directory.AssociationRepository = (*MockAssociationRepository)(nil)

// stubPinger reports a fixed reachability result
type stubPinger struct {
	err error
}

func (s *stubPinger) Ping() error {
	return s.err
}

func newBuiltinOracle(t *testing.T) *directory.Oracle {
	t.Helper()
	oracle, err := directory.NewBuiltinOracle("builtin-msisdn", "MSISDN", nil)
	require.NoError(t, err)
	return oracle
}

func newTestParty(t *testing.T) directory.PartyLookup {
	t.Helper()
	party, err := directory.NewPartyLookup("MSISDN", "123456789", nil, nil)
	require.NoError(t, err)
	return party
}

func TestBuiltinProvider_Init(t *testing.T) {
	t.Run("succeeds when store is reachable", func(t *testing.T) {
		p := NewBuiltinProvider(newBuiltinOracle(t), new(MockAssociationRepository), &stubPinger{}, zap.NewNop())
		assert.NoError(t, p.Init(context.Background()))
	})

	t.Run("fails with init error when store is unreachable", func(t *testing.T) {
		p := NewBuiltinProvider(newBuiltinOracle(t), new(MockAssociationRepository), &stubPinger{err: errors.New("connection refused")}, zap.NewNop())

		err := p.Init(context.Background())
		require.Error(t, err)
		assert.Equal(t, directory.ErrCodeProviderInitFailed, directory.ErrorCode(err))
	})
}

func TestBuiltinProvider_HealthCheck(t *testing.T) {
	t.Run("true when store is reachable", func(t *testing.T) {
		p := NewBuiltinProvider(newBuiltinOracle(t), new(MockAssociationRepository), &stubPinger{}, zap.NewNop())
		assert.True(t, p.HealthCheck(context.Background()))
	})

	t.Run("false when store is unreachable", func(t *testing.T) {
		p := NewBuiltinProvider(newBuiltinOracle(t), new(MockAssociationRepository), &stubPinger{err: errors.New("connection refused")}, zap.NewNop())
		assert.False(t, p.HealthCheck(context.Background()))
	})

	t.Run("false after destroy", func(t *testing.T) {
		p := NewBuiltinProvider(newBuiltinOracle(t), new(MockAssociationRepository), &stubPinger{}, zap.NewNop())
		require.NoError(t, p.Destroy(context.Background()))
		assert.False(t, p.HealthCheck(context.Background()))
	})
}

func TestBuiltinProvider_GetParticipantFspID(t *testing.T) {
	party := newTestParty(t)

	t.Run("returns stored fsp id", func(t *testing.T) {
		mockRepo := new(MockAssociationRepository)
		fspID := "fsp1"
		mockRepo.On("FindFspID", mock.Anything, party).Return(&fspID, nil)

		p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
		result, err := p.GetParticipantFspID(context.Background(), party)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "fsp1", *result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("returns nil without error when absent", func(t *testing.T) {
		mockRepo := new(MockAssociationRepository)
		mockRepo.On("FindFspID", mock.Anything, party).Return(nil, nil)

		p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
		result, err := p.GetParticipantFspID(context.Background(), party)
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestBuiltinProvider_AssociateParticipant(t *testing.T) {
	party := newTestParty(t)

	t.Run("persists a valid association", func(t *testing.T) {
		mockRepo := new(MockAssociationRepository)
		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(a *directory.Association) bool {
			return a.FspID == "fsp1" && a.PartyID == "123456789"
		})).Return(nil)

		p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
		assert.NoError(t, p.AssociateParticipant(context.Background(), "fsp1", party))
		mockRepo.AssertExpectations(t)
	})

	t.Run("propagates duplicate tuple error", func(t *testing.T) {
		mockRepo := new(MockAssociationRepository)
		mockRepo.On("Save", mock.Anything, mock.Anything).Return(directory.NewAssociationExistsError("fsp1"))

		p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
		err := p.AssociateParticipant(context.Background(), "fsp1", party)
		require.Error(t, err)
		assert.Equal(t, directory.ErrCodeAssociationExists, directory.ErrorCode(err))
	})

	t.Run("rejects an empty fsp id before touching the store", func(t *testing.T) {
		mockRepo := new(MockAssociationRepository)

		p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
		err := p.AssociateParticipant(context.Background(), "", party)
		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "Save")
	})
}

func TestBuiltinProvider_DisassociateParticipant(t *testing.T) {
	party := newTestParty(t)

	t.Run("deletes the matching tuple", func(t *testing.T) {
		mockRepo := new(MockAssociationRepository)
		mockRepo.On("Delete", mock.Anything, "fsp1", party).Return(nil)

		p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
		assert.NoError(t, p.DisassociateParticipant(context.Background(), "fsp1", party))
		mockRepo.AssertExpectations(t)
	})

	t.Run("propagates missing association error", func(t *testing.T) {
		mockRepo := new(MockAssociationRepository)
		mockRepo.On("Delete", mock.Anything, "fsp1", party).Return(directory.NewAssociationNotFoundError("fsp1"))

		p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
		err := p.DisassociateParticipant(context.Background(), "fsp1", party)
		require.Error(t, err)
		assert.Equal(t, directory.ErrCodeAssociationNotFound, directory.ErrorCode(err))
	})
}

func TestBuiltinProvider_GetAllAssociations(t *testing.T) {
	mockRepo := new(MockAssociationRepository)
	mockRepo.On("FindAllByPartyType", mock.Anything, "MSISDN").Return([]directory.Association{
		{FspID: "fsp1", PartyType: "MSISDN", PartyID: "123456789"},
	}, nil)

	p := NewBuiltinProvider(newBuiltinOracle(t), mockRepo, &stubPinger{}, zap.NewNop())
	associations, err := p.GetAllAssociations(context.Background())
	require.NoError(t, err)
	require.Len(t, associations, 1)
	assert.Equal(t, "fsp1", associations[0].FspID)
	mockRepo.AssertExpectations(t)
}
