package lookup

import (
	"encoding/json"
	"time"

	"github.com/finswitch/account-lookup/internal/domain/directory"
	"github.com/google/uuid"
)

// =============================================================================
// Party lookup DTOs
// =============================================================================

// PartyLookupRequest identifies one party to resolve
type PartyLookupRequest struct {
	PartyType      string  `json:"partyType" binding:"required,min=1,max=32"`
	PartyID        string  `json:"partyId" binding:"required,min=1,max=128"`
	PartySubType   *string `json:"partySubType" binding:"omitempty,max=32"`
	Currency       *string `json:"currency" binding:"omitempty,currency_code"`
	RequesterFspID string  `json:"-"` // Set from the FSPIOP-Source header, not from request body
}

// PartyLookupResponse carries the resolved FSP for a party. FspID is nil when
// no participant owns the party.
type PartyLookupResponse struct {
	PartyType    string  `json:"partyType"`
	PartyID      string  `json:"partyId"`
	PartySubType *string `json:"partySubType,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	FspID        *string `json:"fspId"`
}

// BulkLookupRequest maps caller-chosen request ids to the parties to resolve.
// On the wire the body is the bare map itself, not an envelope.
type BulkLookupRequest struct {
	RequesterFspID string                        `json:"-"`
	Parties        map[string]PartyLookupRequest `json:"-" binding:"required,min=1"`
}

// UnmarshalJSON decodes the bare request-id map that arrives as the bulk
// request body.
func (r *BulkLookupRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Parties)
}

// BulkLookupResponse carries one result per submitted request id. Entries
// that failed to resolve, for any reason, carry a nil fsp id.
type BulkLookupResponse struct {
	Results map[string]*string `json:"results"`
}

// =============================================================================
// Association DTOs
// =============================================================================

// AssociateParticipantRequest registers a party as owned by an FSP
type AssociateParticipantRequest struct {
	FspID        string  `json:"fspId" binding:"required,min=1,max=64"`
	PartyType    string  `json:"partyType" binding:"required,min=1,max=32"`
	PartyID      string  `json:"partyId" binding:"required,min=1,max=128"`
	PartySubType *string `json:"partySubType" binding:"omitempty,max=32"`
	Currency     *string `json:"currency" binding:"omitempty,currency_code"`
}

// DisassociateParticipantRequest removes a party ownership claim
type DisassociateParticipantRequest struct {
	FspID        string  `json:"fspId" binding:"required,min=1,max=64"`
	PartyType    string  `json:"partyType" binding:"required,min=1,max=32"`
	PartyID      string  `json:"partyId" binding:"required,min=1,max=128"`
	PartySubType *string `json:"partySubType" binding:"omitempty,max=32"`
	Currency     *string `json:"currency" binding:"omitempty,currency_code"`
}

// AssociationResponse represents one stored association in API responses
type AssociationResponse struct {
	FspID        string    `json:"fspId"`
	PartyType    string    `json:"partyType"`
	PartyID      string    `json:"partyId"`
	PartySubType *string   `json:"partySubType,omitempty"`
	Currency     *string   `json:"currency,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToAssociationResponses converts associations to response DTOs
func ToAssociationResponses(associations []directory.Association) []AssociationResponse {
	responses := make([]AssociationResponse, 0, len(associations))
	for _, a := range associations {
		responses = append(responses, AssociationResponse{
			FspID:        a.FspID,
			PartyType:    a.PartyType,
			PartyID:      a.PartyID,
			PartySubType: a.PartySubType,
			Currency:     a.Currency,
			CreatedAt:    a.CreatedAt,
		})
	}
	return responses
}

// =============================================================================
// Oracle admin DTOs
// =============================================================================

// CreateOracleRequest registers a new oracle routing rule
type CreateOracleRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=200"`
	PartyType    string  `json:"partyType" binding:"required,min=1,max=32"`
	Type         string  `json:"type" binding:"required,oneof=builtin remote-http"`
	Currency     *string `json:"currency" binding:"omitempty,currency_code"`
	PartySubType *string `json:"partySubType" binding:"omitempty,max=32"`
	Endpoint     *string `json:"endpoint" binding:"omitempty,url,max=500"`
}

// OracleResponse represents an oracle in API responses
type OracleResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PartyType    string    `json:"partyType"`
	Currency     *string   `json:"currency,omitempty"`
	PartySubType *string   `json:"partySubType,omitempty"`
	Type         string    `json:"type"`
	Endpoint     *string   `json:"endpoint,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Version      int       `json:"version"`
}

// OracleListFilter represents filter options for the oracle list
type OracleListFilter struct {
	Search    string `form:"search"`
	PartyType string `form:"party_type" binding:"omitempty,max=32"`
	Type      string `form:"type" binding:"omitempty,oneof=builtin remote-http"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OracleHealthResponse reports the reachability of one oracle's backend
type OracleHealthResponse struct {
	OracleID  uuid.UUID `json:"oracleId"`
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	CheckedAt time.Time `json:"checkedAt"`
}

// ToOracleResponse converts an oracle to a response DTO
func ToOracleResponse(oracle *directory.Oracle) OracleResponse {
	return OracleResponse{
		ID:           oracle.ID,
		Name:         oracle.Name,
		PartyType:    oracle.PartyType,
		Currency:     oracle.Currency,
		PartySubType: oracle.PartySubType,
		Type:         string(oracle.Type),
		Endpoint:     oracle.Endpoint,
		CreatedAt:    oracle.CreatedAt,
		UpdatedAt:    oracle.UpdatedAt,
		Version:      oracle.Version,
	}
}

// ToOracleResponses converts oracles to response DTOs
func ToOracleResponses(oracles []directory.Oracle) []OracleResponse {
	responses := make([]OracleResponse, 0, len(oracles))
	for i := range oracles {
		responses = append(responses, ToOracleResponse(&oracles[i]))
	}
	return responses
}
