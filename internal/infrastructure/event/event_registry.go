package event

import (
	"github.com/finswitch/account-lookup/internal/application/lookup"
	"github.com/finswitch/account-lookup/internal/domain/directory"
)

// RegisterAllEvents registers all domain event types with the serializer.
// This is required for the OutboxProcessor to deserialize events from the
// outbox table.
func RegisterAllEvents(serializer *EventSerializer) {
	// Oracle lifecycle events
	serializer.Register(directory.EventTypeOracleRegistered, &directory.OracleRegisteredEvent{})
	serializer.Register(directory.EventTypeOracleRemoved, &directory.OracleRemovedEvent{})

	// Lookup outcome events
	serializer.Register(directory.EventTypePartyResolved, &directory.PartyResolvedEvent{})
	serializer.Register(directory.EventTypeBulkPartyResolved, &directory.BulkPartyResolvedEvent{})
	serializer.Register(directory.EventTypeParticipantAssociated, &directory.ParticipantAssociatedEvent{})
	serializer.Register(directory.EventTypeParticipantDisassociated, &directory.ParticipantDisassociatedEvent{})

	// Lookup error events all share one payload shape
	serializer.Register(directory.EventTypeErrorOracleNotFound, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorProviderInitFailed, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorParticipantNotFound, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorAssociationExists, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorAssociationNotFound, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorUnableToAssociate, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorUnableToDisassociate, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorInvalidParticipant, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorInvalidMessageType, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorInvalidPayload, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorBackendFailure, &directory.AccountLookupErrorEvent{})
	serializer.Register(directory.EventTypeErrorUnknown, &directory.AccountLookupErrorEvent{})

	// Inbound lookup commands travel over the same bus
	serializer.Register(lookup.EventTypeLookupCommand, &lookup.LookupCommand{})
}
