package directory

import (
	"github.com/finswitch/account-lookup/internal/domain/shared"
)

// OracleAggregateType is the aggregate type for oracle events
const OracleAggregateType = "Oracle"

// Oracle event types
const (
	EventTypeOracleRegistered = "directory.oracle.registered"
	EventTypeOracleRemoved    = "directory.oracle.removed"
)

// OracleRegisteredEvent is published when a new oracle routing rule is registered
type OracleRegisteredEvent struct {
	shared.BaseDomainEvent
	Name         string  `json:"name"`
	PartyType    string  `json:"party_type"`
	Currency     *string `json:"currency,omitempty"`
	PartySubType *string `json:"party_sub_type,omitempty"`
	OracleType   string  `json:"oracle_type"`
	Endpoint     *string `json:"endpoint,omitempty"`
}

// NewOracleRegisteredEvent creates a new oracle registered event
func NewOracleRegisteredEvent(oracle *Oracle) *OracleRegisteredEvent {
	return &OracleRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOracleRegistered, OracleAggregateType, oracle.ID),
		Name:            oracle.Name,
		PartyType:       oracle.PartyType,
		Currency:        oracle.Currency,
		PartySubType:    oracle.PartySubType,
		OracleType:      string(oracle.Type),
		Endpoint:        oracle.Endpoint,
	}
}

// OracleRemovedEvent is published when an oracle routing rule is removed
type OracleRemovedEvent struct {
	shared.BaseDomainEvent
	Name      string `json:"name"`
	PartyType string `json:"party_type"`
}

// NewOracleRemovedEvent creates a new oracle removed event
func NewOracleRemovedEvent(oracle *Oracle) *OracleRemovedEvent {
	return &OracleRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOracleRemoved, OracleAggregateType, oracle.ID),
		Name:            oracle.Name,
		PartyType:       oracle.PartyType,
	}
}
