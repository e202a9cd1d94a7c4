package directory

import (
	"github.com/finswitch/account-lookup/internal/domain/shared"
	"github.com/google/uuid"
)

// PartyAggregateType is the aggregate type for party resolution events. The
// party itself is not a stored aggregate, so these events carry a nil
// aggregate id.
const PartyAggregateType = "Party"

// Lookup outcome event types
const (
	EventTypePartyResolved             = "directory.party.resolved"
	EventTypeBulkPartyResolved         = "directory.party.bulk_resolved"
	EventTypeParticipantAssociated     = "directory.participant.associated"
	EventTypeParticipantDisassociated  = "directory.participant.disassociated"
	EventTypeErrorOracleNotFound       = "directory.lookup.error.oracle_not_found"
	EventTypeErrorProviderInitFailed   = "directory.lookup.error.provider_init_failed"
	EventTypeErrorParticipantNotFound  = "directory.lookup.error.participant_not_found"
	EventTypeErrorAssociationExists    = "directory.lookup.error.association_already_exists"
	EventTypeErrorAssociationNotFound  = "directory.lookup.error.association_not_found"
	EventTypeErrorUnableToAssociate    = "directory.lookup.error.unable_to_associate"
	EventTypeErrorUnableToDisassociate = "directory.lookup.error.unable_to_disassociate"
	EventTypeErrorInvalidParticipant   = "directory.lookup.error.invalid_participant"
	EventTypeErrorInvalidMessageType   = "directory.lookup.error.invalid_message_type"
	EventTypeErrorInvalidPayload       = "directory.lookup.error.invalid_message_payload"
	EventTypeErrorBackendFailure       = "directory.lookup.error.backend_failure"
	EventTypeErrorUnknown              = "directory.lookup.error.unknown"
)

// LookupRequestContext carries the party identification of the request a
// lookup outcome refers to, for correlation by downstream services.
type LookupRequestContext struct {
	PartyID        string  `json:"party_id"`
	PartyType      string  `json:"party_type"`
	PartySubType   *string `json:"party_sub_type,omitempty"`
	Currency       *string `json:"currency,omitempty"`
	RequesterFspID string  `json:"requester_fsp_id,omitempty"`
	SourceType     string  `json:"source_type,omitempty"`
}

// PartyResolvedEvent is published when a single lookup resolves an FSP
type PartyResolvedEvent struct {
	shared.BaseDomainEvent
	LookupRequestContext
	FspID string `json:"fsp_id"`
}

// NewPartyResolvedEvent creates a new party resolved event
func NewPartyResolvedEvent(reqCtx LookupRequestContext, fspID string) *PartyResolvedEvent {
	return &PartyResolvedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypePartyResolved, PartyAggregateType, uuid.Nil),
		LookupRequestContext: reqCtx,
		FspID:                fspID,
	}
}

// BulkPartyResolvedEvent is published when a bulk lookup completes. Every
// submitted request id is present; unresolvable entries carry a nil fsp id.
type BulkPartyResolvedEvent struct {
	shared.BaseDomainEvent
	RequesterFspID string             `json:"requester_fsp_id,omitempty"`
	Results        map[string]*string `json:"results"`
}

// NewBulkPartyResolvedEvent creates a new bulk party resolved event
func NewBulkPartyResolvedEvent(requesterFspID string, results map[string]*string) *BulkPartyResolvedEvent {
	return &BulkPartyResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBulkPartyResolved, PartyAggregateType, uuid.Nil),
		RequesterFspID:  requesterFspID,
		Results:         results,
	}
}

// ParticipantAssociatedEvent is published when a party is associated to an FSP
type ParticipantAssociatedEvent struct {
	shared.BaseDomainEvent
	LookupRequestContext
	FspID string `json:"fsp_id"`
}

// NewParticipantAssociatedEvent creates a new participant associated event
func NewParticipantAssociatedEvent(fspID string, reqCtx LookupRequestContext) *ParticipantAssociatedEvent {
	return &ParticipantAssociatedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypeParticipantAssociated, PartyAggregateType, uuid.Nil),
		LookupRequestContext: reqCtx,
		FspID:                fspID,
	}
}

// ParticipantDisassociatedEvent is published when an association is removed
type ParticipantDisassociatedEvent struct {
	shared.BaseDomainEvent
	LookupRequestContext
	FspID string `json:"fsp_id"`
}

// NewParticipantDisassociatedEvent creates a new participant disassociated event
func NewParticipantDisassociatedEvent(fspID string, reqCtx LookupRequestContext) *ParticipantDisassociatedEvent {
	return &ParticipantDisassociatedEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(EventTypeParticipantDisassociated, PartyAggregateType, uuid.Nil),
		LookupRequestContext: reqCtx,
		FspID:                fspID,
	}
}

// AccountLookupErrorEvent reports a failed lookup operation back onto the
// bus. Exactly one is produced per failed bus-originated request; the
// error code and message are stable across releases.
type AccountLookupErrorEvent struct {
	shared.BaseDomainEvent
	LookupRequestContext
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// NewAccountLookupErrorEvent creates a new account lookup error event
func NewAccountLookupErrorEvent(eventType string, reqCtx LookupRequestContext, errorCode, errorMessage string) *AccountLookupErrorEvent {
	return &AccountLookupErrorEvent{
		BaseDomainEvent:      shared.NewBaseDomainEvent(eventType, PartyAggregateType, uuid.Nil),
		LookupRequestContext: reqCtx,
		ErrorCode:            errorCode,
		ErrorMessage:         errorMessage,
	}
}
