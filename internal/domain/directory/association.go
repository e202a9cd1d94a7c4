package directory

import (
	"strings"

	"github.com/finswitch/account-lookup/internal/domain/shared"
)

// Association is a persisted fact that a party belongs to an FSP. The full
// tuple (fsp id, party type, party id, party sub-type, currency) is unique;
// associations are created and deleted, never mutated.
type Association struct {
	shared.BaseEntity
	FspID        string  `gorm:"type:varchar(64);not null;uniqueIndex:idx_association_tuple,priority:1"`
	PartyType    string  `gorm:"type:varchar(32);not null;uniqueIndex:idx_association_tuple,priority:2"`
	PartyID      string  `gorm:"type:varchar(128);not null;uniqueIndex:idx_association_tuple,priority:3"`
	PartySubType *string `gorm:"type:varchar(32);uniqueIndex:idx_association_tuple,priority:4"`
	Currency     *string `gorm:"type:varchar(3);uniqueIndex:idx_association_tuple,priority:5"`
}

// TableName returns the table name for GORM
func (Association) TableName() string {
	return "participant_associations"
}

// NewAssociation creates a validated association between a party and an FSP
func NewAssociation(fspID string, party PartyLookup) (*Association, error) {
	if err := validateFspID(fspID); err != nil {
		return nil, err
	}
	if err := party.Validate(); err != nil {
		return nil, err
	}

	return &Association{
		BaseEntity:   shared.NewBaseEntity(),
		FspID:        strings.TrimSpace(fspID),
		PartyType:    party.PartyType,
		PartyID:      party.PartyID,
		PartySubType: party.PartySubType,
		Currency:     party.Currency,
	}, nil
}

// Party returns the association's party identification as a lookup value
func (a *Association) Party() PartyLookup {
	return PartyLookup{
		PartyID:      a.PartyID,
		PartyType:    a.PartyType,
		PartySubType: a.PartySubType,
		Currency:     a.Currency,
	}
}

// Matches reports whether the association covers the given fsp and party tuple
func (a *Association) Matches(fspID string, party PartyLookup) bool {
	return a.FspID == fspID &&
		a.PartyType == party.PartyType &&
		a.PartyID == party.PartyID &&
		stringOrEmpty(a.PartySubType) == party.SubTypeOrEmpty() &&
		stringOrEmpty(a.Currency) == party.CurrencyOrEmpty()
}

func validateFspID(fspID string) error {
	fspID = strings.TrimSpace(fspID)
	if fspID == "" {
		return shared.NewDomainError("INVALID_FSP_ID", "FSP id cannot be empty")
	}
	if len(fspID) > 64 {
		return shared.NewDomainError("INVALID_FSP_ID", "FSP id cannot exceed 64 characters")
	}
	return nil
}
