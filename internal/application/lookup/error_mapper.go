package lookup

import (
	"github.com/finswitch/account-lookup/internal/domain/directory"
)

// errorEventTypes maps directory error codes onto the outbound error event
// type published for them. Codes outside this table fall through to the
// generic unknown-error event.
var errorEventTypes = map[string]string{
	directory.ErrCodeOracleNotFound:        directory.EventTypeErrorOracleNotFound,
	directory.ErrCodeProviderInitFailed:    directory.EventTypeErrorProviderInitFailed,
	directory.ErrCodeParticipantNotFound:   directory.EventTypeErrorParticipantNotFound,
	directory.ErrCodeAssociationExists:     directory.EventTypeErrorAssociationExists,
	directory.ErrCodeAssociationNotFound:   directory.EventTypeErrorAssociationNotFound,
	directory.ErrCodeUnableToAssociate:     directory.EventTypeErrorUnableToAssociate,
	directory.ErrCodeUnableToDisassociate:  directory.EventTypeErrorUnableToDisassociate,
	directory.ErrCodeInvalidParticipantID:  directory.EventTypeErrorInvalidParticipant,
	directory.ErrCodeInvalidMessageType:    directory.EventTypeErrorInvalidMessageType,
	directory.ErrCodeInvalidMessagePayload: directory.EventTypeErrorInvalidPayload,
	directory.ErrCodeBackendFailure:        directory.EventTypeErrorBackendFailure,
}

// ErrorEventMapper converts a failed lookup operation into the error event
// published in its place. The mapping is total: every error produces exactly
// one event, and the mapper itself never fails.
type ErrorEventMapper struct{}

// NewErrorEventMapper creates a new error event mapper
func NewErrorEventMapper() *ErrorEventMapper {
	return &ErrorEventMapper{}
}

// Map builds the error event for a failed operation. Errors without a known
// domain code map to the unknown-error event carrying the original message.
func (m *ErrorEventMapper) Map(err error, reqCtx directory.LookupRequestContext) *directory.AccountLookupErrorEvent {
	if err == nil {
		return nil
	}

	code := directory.ErrorCode(err)
	eventType, ok := errorEventTypes[code]
	if !ok {
		if code == "" {
			code = "INTERNAL_ERROR"
		}
		return directory.NewAccountLookupErrorEvent(directory.EventTypeErrorUnknown, reqCtx, code, err.Error())
	}
	return directory.NewAccountLookupErrorEvent(eventType, reqCtx, code, err.Error())
}
