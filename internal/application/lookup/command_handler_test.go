package lookup

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/finswitch/account-lookup/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type handlerFixture struct {
	*serviceFixture
	handler *CommandHandler
}

func newHandlerFixture() *handlerFixture {
	f := newServiceFixture()
	return &handlerFixture{
		serviceFixture: f,
		handler:        NewCommandHandler(f.service, NewErrorEventMapper(), f.publisher, zap.NewNop()),
	}
}

func mustCommand(t *testing.T, commandType string, payload any) *LookupCommand {
	t.Helper()
	command, err := NewLookupCommand(commandType, payload)
	require.NoError(t, err)
	return command
}

func errorEventOf(t *testing.T, events []shared.DomainEvent) *directory.AccountLookupErrorEvent {
	t.Helper()
	require.Len(t, events, 1, "exactly one outbound event per inbound message")
	errorEvent, ok := events[0].(*directory.AccountLookupErrorEvent)
	require.True(t, ok, "expected an error event, got %T", events[0])
	return errorEvent
}

func TestCommandHandler_EventTypes(t *testing.T) {
	f := newHandlerFixture()
	assert.Equal(t, []string{EventTypeLookupCommand}, f.handler.EventTypes())
}

func TestCommandHandler_GetParty(t *testing.T) {
	ctx := context.Background()

	t.Run("successful lookup produces exactly one resolved event", func(t *testing.T) {
		f := newHandlerFixture()
		oracle := msisdnOracle(t)

		f.oracles.On("FindForRouting", ctx, "MSISDN", (*string)(nil)).Return(oracle, nil)
		f.providers.On("ProviderFor", ctx, oracle).Return(f.provider, nil)
		f.provider.On("GetParticipantFspID", ctx, mock.Anything).Return(strPtr("fsp-mobile"), nil)

		command := mustCommand(t, CommandTypeGetParty, PartyLookupRequest{
			PartyType: "MSISDN",
			PartyID:   "27713803912",
		})

		require.NoError(t, f.handler.Handle(ctx, command))

		events := f.publisher.published()
		require.Len(t, events, 1)
		assert.Equal(t, directory.EventTypePartyResolved, events[0].EventType())
	})

	t.Run("failed lookup produces exactly one mapped error event", func(t *testing.T) {
		f := newHandlerFixture()
		f.oracles.On("FindForRouting", ctx, "IBAN", (*string)(nil)).
			Return(nil, directory.NewOracleNotFoundError("IBAN"))

		command := mustCommand(t, CommandTypeGetParty, PartyLookupRequest{
			PartyType: "IBAN",
			PartyID:   "DE89370400440532013000",
		})

		require.NoError(t, f.handler.Handle(ctx, command), "failed commands are answered, never retried")

		errorEvent := errorEventOf(t, f.publisher.published())
		assert.Equal(t, directory.EventTypeErrorOracleNotFound, errorEvent.EventType())
		assert.Equal(t, directory.ErrCodeOracleNotFound, errorEvent.ErrorCode)
		assert.Equal(t, "IBAN", errorEvent.PartyType)
		assert.Equal(t, "bus", errorEvent.SourceType)
	})

	t.Run("unowned party answers with a participant not found error event", func(t *testing.T) {
		f := newHandlerFixture()
		oracle := msisdnOracle(t)

		f.oracles.On("FindForRouting", ctx, "MSISDN", (*string)(nil)).Return(oracle, nil)
		f.providers.On("ProviderFor", ctx, oracle).Return(f.provider, nil)
		f.provider.On("GetParticipantFspID", ctx, mock.Anything).Return(nil, nil)

		command := mustCommand(t, CommandTypeGetParty, PartyLookupRequest{
			PartyType: "MSISDN",
			PartyID:   "27713803912",
		})

		require.NoError(t, f.handler.Handle(ctx, command))

		errorEvent := errorEventOf(t, f.publisher.published())
		assert.Equal(t, directory.EventTypeErrorParticipantNotFound, errorEvent.EventType())
	})
}

func TestCommandHandler_GetPartyBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("bulk command publishes one bulk resolved event", func(t *testing.T) {
		f := newHandlerFixture()
		oracle := msisdnOracle(t)

		f.oracles.On("FindForRouting", ctx, "MSISDN", (*string)(nil)).Return(oracle, nil)
		f.providers.On("ProviderFor", ctx, oracle).Return(f.provider, nil)
		f.provider.On("GetParticipantFspID", ctx, mock.Anything).Return(strPtr("fsp-mobile"), nil)

		command := mustCommand(t, CommandTypeGetPartyBulk, map[string]PartyLookupRequest{
			"r1": {PartyType: "MSISDN", PartyID: "111"},
			"r2": {PartyType: "MSISDN", PartyID: "222"},
		})

		require.NoError(t, f.handler.Handle(ctx, command))

		events := f.publisher.published()
		require.Len(t, events, 1)
		bulkEvent, ok := events[0].(*directory.BulkPartyResolvedEvent)
		require.True(t, ok)
		assert.Len(t, bulkEvent.Results, 2)
	})

	t.Run("empty bulk payload is rejected before any domain operation", func(t *testing.T) {
		f := newHandlerFixture()

		command := mustCommand(t, CommandTypeGetPartyBulk, map[string]PartyLookupRequest{})
		require.NoError(t, f.handler.Handle(ctx, command))

		errorEvent := errorEventOf(t, f.publisher.published())
		assert.Equal(t, directory.ErrCodeInvalidMessagePayload, errorEvent.ErrorCode)
		f.oracles.AssertNotCalled(t, "FindForRouting", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCommandHandler_Associate(t *testing.T) {
	ctx := context.Background()

	t.Run("successful associate produces one associated event", func(t *testing.T) {
		f := newHandlerFixture()
		oracle := msisdnOracle(t)

		f.oracles.On("FindForRouting", ctx, "MSISDN", (*string)(nil)).Return(oracle, nil)
		f.providers.On("ProviderFor", ctx, oracle).Return(f.provider, nil)
		f.provider.On("AssociateParticipant", ctx, "fsp-mobile", mock.Anything).Return(nil)

		command := mustCommand(t, CommandTypeAssociate, AssociateParticipantRequest{
			FspID:     "fsp-mobile",
			PartyType: "MSISDN",
			PartyID:   "27713803912",
		})

		require.NoError(t, f.handler.Handle(ctx, command))

		events := f.publisher.published()
		require.Len(t, events, 1)
		assert.Equal(t, directory.EventTypeParticipantAssociated, events[0].EventType())
	})

	t.Run("redelivered associate answers with the normal conflict error", func(t *testing.T) {
		f := newHandlerFixture()
		oracle := msisdnOracle(t)

		f.oracles.On("FindForRouting", ctx, "MSISDN", (*string)(nil)).Return(oracle, nil)
		f.providers.On("ProviderFor", ctx, oracle).Return(f.provider, nil)
		f.provider.On("AssociateParticipant", ctx, "fsp-mobile", mock.Anything).
			Return(directory.NewAssociationExistsError("fsp-mobile"))

		command := mustCommand(t, CommandTypeAssociate, AssociateParticipantRequest{
			FspID:     "fsp-mobile",
			PartyType: "MSISDN",
			PartyID:   "27713803912",
		})

		require.NoError(t, f.handler.Handle(ctx, command))

		errorEvent := errorEventOf(t, f.publisher.published())
		assert.Equal(t, directory.EventTypeErrorUnableToAssociate, errorEvent.EventType())
		assert.Equal(t, directory.ErrCodeUnableToAssociate, errorEvent.ErrorCode)
	})
}

func TestCommandHandler_Disassociate(t *testing.T) {
	ctx := context.Background()
	f := newHandlerFixture()
	oracle := msisdnOracle(t)

	f.oracles.On("FindForRouting", ctx, "MSISDN", (*string)(nil)).Return(oracle, nil)
	f.providers.On("ProviderFor", ctx, oracle).Return(f.provider, nil)
	f.provider.On("DisassociateParticipant", ctx, "fsp-mobile", mock.Anything).
		Return(directory.NewAssociationNotFoundError("fsp-mobile"))

	command := mustCommand(t, CommandTypeDisassociate, DisassociateParticipantRequest{
		FspID:     "fsp-mobile",
		PartyType: "MSISDN",
		PartyID:   "27713803912",
	})

	require.NoError(t, f.handler.Handle(ctx, command))

	errorEvent := errorEventOf(t, f.publisher.published())
	assert.Equal(t, directory.EventTypeErrorUnableToDisassociate, errorEvent.EventType())
}

func TestCommandHandler_RejectsBadMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown command type answers INVALID_MESSAGE_TYPE", func(t *testing.T) {
		f := newHandlerFixture()

		command := mustCommand(t, "sing-a-song", PartyLookupRequest{PartyType: "MSISDN", PartyID: "1"})
		require.NoError(t, f.handler.Handle(ctx, command))

		errorEvent := errorEventOf(t, f.publisher.published())
		assert.Equal(t, directory.EventTypeErrorInvalidMessageType, errorEvent.EventType())
		assert.Equal(t, directory.ErrCodeInvalidMessageType, errorEvent.ErrorCode)
		f.oracles.AssertNotCalled(t, "FindForRouting", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("undecodable payload answers INVALID_MESSAGE_PAYLOAD", func(t *testing.T) {
		f := newHandlerFixture()

		command := &LookupCommand{
			BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLookupCommand, directory.PartyAggregateType, uuid.Nil),
			CommandType:     CommandTypeGetParty,
			Payload:         json.RawMessage(`{"partyType": 42`),
		}
		require.NoError(t, f.handler.Handle(ctx, command))

		errorEvent := errorEventOf(t, f.publisher.published())
		assert.Equal(t, directory.ErrCodeInvalidMessagePayload, errorEvent.ErrorCode)
		f.oracles.AssertNotCalled(t, "FindForRouting", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("foreign event type answers INVALID_MESSAGE_PAYLOAD", func(t *testing.T) {
		f := newHandlerFixture()

		foreign := directory.NewPartyResolvedEvent(directory.LookupRequestContext{PartyType: "MSISDN", PartyID: "1"}, "fsp-mobile")
		require.NoError(t, f.handler.Handle(ctx, foreign))

		errorEvent := errorEventOf(t, f.publisher.published())
		assert.Equal(t, directory.ErrCodeInvalidMessagePayload, errorEvent.ErrorCode)
	})
}
