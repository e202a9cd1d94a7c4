package lookup

import (
	"context"
	"encoding/json"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/finswitch/account-lookup/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventTypeLookupCommand is the bus event type carrying inbound lookup commands
const EventTypeLookupCommand = "directory.lookup.command"

// Supported command types. The set is closed: anything else is rejected
// before any domain operation runs.
const (
	CommandTypeGetParty     = "get-party"
	CommandTypeGetPartyBulk = "get-party-bulk"
	CommandTypeAssociate    = "associate-participant"
	CommandTypeDisassociate = "disassociate-participant"
)

// LookupCommand is the envelope for lookup operations requested over the
// event bus. The payload schema depends on the command type.
type LookupCommand struct {
	shared.BaseDomainEvent
	CommandType string          `json:"command_type"`
	Payload     json.RawMessage `json:"payload"`
}

// NewLookupCommand creates a command envelope with a JSON-encoded payload
func NewLookupCommand(commandType string, payload any) (*LookupCommand, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &LookupCommand{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeLookupCommand, directory.PartyAggregateType, uuid.Nil),
		CommandType:     commandType,
		Payload:         encoded,
	}, nil
}

// CommandHandler executes lookup commands arriving over the event bus.
// Every inbound message results in exactly one outbound event: the success
// event the service publishes, or the mapped error event this handler
// publishes in its place. Handle always returns nil; failed commands are
// answered, not retried.
type CommandHandler struct {
	service   *LookupService
	mapper    *ErrorEventMapper
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewCommandHandler creates a new lookup command handler
func NewCommandHandler(service *LookupService, mapper *ErrorEventMapper, publisher shared.EventPublisher, logger *zap.Logger) *CommandHandler {
	return &CommandHandler{
		service:   service,
		mapper:    mapper,
		publisher: publisher,
		logger:    logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *CommandHandler) EventTypes() []string {
	return []string{EventTypeLookupCommand}
}

// Handle dispatches one inbound command to the matching service operation
func (h *CommandHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	command, ok := event.(*LookupCommand)
	if !ok {
		h.answerError(ctx, directory.NewInvalidMessagePayloadError("event is not a lookup command"), directory.LookupRequestContext{SourceType: "bus"})
		return nil
	}

	switch command.CommandType {
	case CommandTypeGetParty:
		h.handleGetParty(ctx, command)
	case CommandTypeGetPartyBulk:
		h.handleGetPartyBulk(ctx, command)
	case CommandTypeAssociate:
		h.handleAssociate(ctx, command)
	case CommandTypeDisassociate:
		h.handleDisassociate(ctx, command)
	default:
		h.answerError(ctx, directory.NewInvalidMessageTypeError(command.CommandType), directory.LookupRequestContext{SourceType: "bus"})
	}
	return nil
}

func (h *CommandHandler) handleGetParty(ctx context.Context, command *LookupCommand) {
	var req PartyLookupRequest
	if err := json.Unmarshal(command.Payload, &req); err != nil {
		h.answerError(ctx, directory.NewInvalidMessagePayloadError(err.Error()), directory.LookupRequestContext{SourceType: "bus"})
		return
	}

	if _, err := h.service.LookupParticipant(ctx, req); err != nil {
		h.answerError(ctx, err, commandContext(req))
	}
}

func (h *CommandHandler) handleGetPartyBulk(ctx context.Context, command *LookupCommand) {
	var parties map[string]PartyLookupRequest
	if err := json.Unmarshal(command.Payload, &parties); err != nil {
		h.answerError(ctx, directory.NewInvalidMessagePayloadError(err.Error()), directory.LookupRequestContext{SourceType: "bus"})
		return
	}
	if len(parties) == 0 {
		h.answerError(ctx, directory.NewInvalidMessagePayloadError("bulk lookup payload is empty"), directory.LookupRequestContext{SourceType: "bus"})
		return
	}

	if _, err := h.service.LookupParticipants(ctx, BulkLookupRequest{Parties: parties}); err != nil {
		h.answerError(ctx, err, directory.LookupRequestContext{SourceType: "bus"})
	}
}

func (h *CommandHandler) handleAssociate(ctx context.Context, command *LookupCommand) {
	var req AssociateParticipantRequest
	if err := json.Unmarshal(command.Payload, &req); err != nil {
		h.answerError(ctx, directory.NewInvalidMessagePayloadError(err.Error()), directory.LookupRequestContext{SourceType: "bus"})
		return
	}

	if err := h.service.AssociateParticipant(ctx, req); err != nil {
		h.answerError(ctx, err, associationContext(req.FspID, req.PartyType, req.PartyID, req.PartySubType, req.Currency))
	}
}

func (h *CommandHandler) handleDisassociate(ctx context.Context, command *LookupCommand) {
	var req DisassociateParticipantRequest
	if err := json.Unmarshal(command.Payload, &req); err != nil {
		h.answerError(ctx, directory.NewInvalidMessagePayloadError(err.Error()), directory.LookupRequestContext{SourceType: "bus"})
		return
	}

	if err := h.service.DisassociateParticipant(ctx, req); err != nil {
		h.answerError(ctx, err, associationContext(req.FspID, req.PartyType, req.PartyID, req.PartySubType, req.Currency))
	}
}

// answerError publishes the mapped error event for a failed command
func (h *CommandHandler) answerError(ctx context.Context, err error, reqCtx directory.LookupRequestContext) {
	errorEvent := h.mapper.Map(err, reqCtx)
	if errorEvent == nil {
		return
	}
	if publishErr := h.publisher.Publish(ctx, errorEvent); publishErr != nil {
		h.logger.Error("failed to publish lookup error event",
			zap.String("error_code", errorEvent.ErrorCode),
			zap.Error(publishErr),
		)
	}
}

// commandContext builds the correlation context for a bus-originated lookup
func commandContext(req PartyLookupRequest) directory.LookupRequestContext {
	return directory.LookupRequestContext{
		PartyID:        req.PartyID,
		PartyType:      req.PartyType,
		PartySubType:   req.PartySubType,
		Currency:       req.Currency,
		RequesterFspID: req.RequesterFspID,
		SourceType:     "bus",
	}
}

// associationContext builds the correlation context for a bus-originated
// association change
func associationContext(fspID, partyType, partyID string, partySubType, currency *string) directory.LookupRequestContext {
	return directory.LookupRequestContext{
		PartyID:        partyID,
		PartyType:      partyType,
		PartySubType:   partySubType,
		Currency:       currency,
		RequesterFspID: fspID,
		SourceType:     "bus",
	}
}

// Ensure CommandHandler implements shared.EventHandler
var _ shared.EventHandler = (*CommandHandler)(nil)
