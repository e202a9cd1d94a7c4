package directory

import (
	"errors"
	"fmt"

	"github.com/finswitch/account-lookup/internal/domain/shared"
)

// Stable error codes for the directory context. Downstream services match on
// these codes, so they must not change between releases.
const (
	ErrCodeOracleNotFound        = "ORACLE_NOT_FOUND"
	ErrCodeOracleAlreadyExists   = "ORACLE_ALREADY_EXISTS"
	ErrCodeOracleTypeUnsupported = "ORACLE_TYPE_UNSUPPORTED"
	ErrCodeProviderInitFailed    = "ORACLE_PROVIDER_INIT_FAILED"
	ErrCodeProviderDestroyFailed = "ORACLE_PROVIDER_DESTROY_FAILED"
	ErrCodeParticipantNotFound   = "PARTICIPANT_NOT_FOUND"
	ErrCodeAssociationExists     = "ASSOCIATION_ALREADY_EXISTS"
	ErrCodeAssociationNotFound   = "ASSOCIATION_NOT_FOUND"
	ErrCodeUnableToAssociate     = "UNABLE_TO_ASSOCIATE"
	ErrCodeUnableToDisassociate  = "UNABLE_TO_DISASSOCIATE"
	ErrCodeInvalidParticipantID  = "INVALID_PARTICIPANT_ID"
	ErrCodeInvalidMessageType    = "INVALID_MESSAGE_TYPE"
	ErrCodeInvalidMessagePayload = "INVALID_MESSAGE_PAYLOAD"
	ErrCodeBackendFailure        = "BACKEND_FAILURE"
)

// NewOracleNotFoundError reports that no oracle matches the given reference
func NewOracleNotFoundError(ref string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeOracleNotFound, fmt.Sprintf("no oracle found for %s", ref))
}

// NewDuplicateOracleError reports an id or name collision on registration
func NewDuplicateOracleError(ref string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeOracleAlreadyExists, fmt.Sprintf("oracle already exists: %s", ref))
}

// NewUnsupportedOracleTypeError reports an oracle type no provider implements
func NewUnsupportedOracleTypeError(oracleType string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeOracleTypeUnsupported, fmt.Sprintf("unsupported oracle type: %s", oracleType))
}

// NewProviderInitError reports that a provider's backing resource could not be reached
func NewProviderInitError(cause string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeProviderInitFailed, fmt.Sprintf("unable to init oracle provider: %s", cause))
}

// NewProviderDestroyError reports a failure while releasing a provider's backing resource
func NewProviderDestroyError(cause string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeProviderDestroyFailed, fmt.Sprintf("unable to destroy oracle provider: %s", cause))
}

// NewParticipantNotFoundError reports that no FSP owns the requested party
func NewParticipantNotFoundError(partyType, partyID string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeParticipantNotFound, fmt.Sprintf("no participant found for %s %s", partyType, partyID))
}

// NewAssociationExistsError reports a duplicate association tuple
func NewAssociationExistsError(fspID string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeAssociationExists, fmt.Sprintf("participant association already exists for fsp %s", fspID))
}

// NewAssociationNotFoundError reports a missing association tuple
func NewAssociationNotFoundError(fspID string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeAssociationNotFound, fmt.Sprintf("participant association does not exist for fsp %s", fspID))
}

// NewUnableToAssociateError wraps a lower-level association failure into the
// coarser error callers outside the directory context observe
func NewUnableToAssociateError(cause error) *shared.DomainError {
	return shared.NewDomainError(ErrCodeUnableToAssociate, fmt.Sprintf("unable to associate participant: %s", cause.Error()))
}

// NewUnableToDisassociateError wraps a lower-level disassociation failure
func NewUnableToDisassociateError(cause error) *shared.DomainError {
	return shared.NewDomainError(ErrCodeUnableToDisassociate, fmt.Sprintf("unable to disassociate participant: %s", cause.Error()))
}

// NewInvalidParticipantError reports malformed party identification fields
func NewInvalidParticipantError(message string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvalidParticipantID, message)
}

// NewInvalidMessageTypeError reports a bus message type outside the supported set
func NewInvalidMessageTypeError(messageType string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvalidMessageType, fmt.Sprintf("invalid message type: %s", messageType))
}

// NewInvalidMessagePayloadError reports an undecodable bus message payload
func NewInvalidMessagePayloadError(cause string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvalidMessagePayload, fmt.Sprintf("invalid message payload: %s", cause))
}

// NewBackendFailureError wraps an underlying storage or transport error
func NewBackendFailureError(cause error) *shared.DomainError {
	return shared.NewDomainError(ErrCodeBackendFailure, fmt.Sprintf("backend failure: %s", cause.Error()))
}

// ErrorCode extracts the domain error code, or empty when err is not a DomainError
func ErrorCode(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// HasErrorCode reports whether err is a DomainError carrying the given code
func HasErrorCode(err error, code string) bool {
	return ErrorCode(err) == code
}
