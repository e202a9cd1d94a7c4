package directory

import (
	"strings"
)

// PartyLookup identifies a party to resolve. It is a value object: two
// lookups with the same fields are interchangeable.
type PartyLookup struct {
	PartyID      string  `json:"partyId"`
	PartyType    string  `json:"partyType"`
	PartySubType *string `json:"partySubType,omitempty"`
	Currency     *string `json:"currency,omitempty"`
}

// NewPartyLookup creates a validated party lookup
func NewPartyLookup(partyType, partyID string, partySubType, currency *string) (PartyLookup, error) {
	p := PartyLookup{
		PartyID:      strings.TrimSpace(partyID),
		PartyType:    strings.TrimSpace(partyType),
		PartySubType: normalizeOptional(partySubType),
		Currency:     normalizeCurrency(currency),
	}
	if err := p.Validate(); err != nil {
		return PartyLookup{}, err
	}
	return p, nil
}

// Validate checks the identification fields
func (p PartyLookup) Validate() error {
	if p.PartyID == "" {
		return NewInvalidParticipantError("party id cannot be empty")
	}
	if p.PartyType == "" {
		return NewInvalidParticipantError("party type cannot be empty")
	}
	if len(p.PartyID) > 128 {
		return NewInvalidParticipantError("party id cannot exceed 128 characters")
	}
	if len(p.PartyType) > 32 {
		return NewInvalidParticipantError("party type cannot exceed 32 characters")
	}
	if p.Currency != nil && len(*p.Currency) != 3 {
		return NewInvalidParticipantError("currency must be a 3-letter ISO 4217 code")
	}
	return nil
}

// CacheKey returns the deterministic key used by the result cache
func (p PartyLookup) CacheKey() string {
	return strings.Join([]string{p.PartyType, p.PartyID, stringOrEmpty(p.PartySubType), stringOrEmpty(p.Currency)}, ":")
}

// SubTypeOrEmpty returns the sub-type or the empty string
func (p PartyLookup) SubTypeOrEmpty() string {
	return stringOrEmpty(p.PartySubType)
}

// CurrencyOrEmpty returns the currency or the empty string
func (p PartyLookup) CurrencyOrEmpty() string {
	return stringOrEmpty(p.Currency)
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func normalizeCurrency(s *string) *string {
	normalized := normalizeOptional(s)
	if normalized == nil {
		return nil
	}
	upper := strings.ToUpper(*normalized)
	return &upper
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
