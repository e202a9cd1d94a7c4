package directory

import (
	"strings"

	"github.com/finswitch/account-lookup/internal/domain/shared"
)

// OracleType selects the provider implementation backing an oracle
type OracleType string

const (
	OracleTypeBuiltin    OracleType = "builtin"     // associations held in this service's own store
	OracleTypeRemoteHTTP OracleType = "remote-http" // delegates to an external oracle over HTTP
)

// Oracle is a registered routing rule: it maps a party type (and optionally a
// settlement currency) to the backend that owns the associations for those
// parties. Oracles are created and deleted, never mutated in place.
type Oracle struct {
	shared.BaseAggregateRoot
	Name         string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	PartyType    string     `gorm:"type:varchar(32);not null;index:idx_oracle_routing,priority:1"`
	Currency     *string    `gorm:"type:varchar(3);index:idx_oracle_routing,priority:2"`
	PartySubType *string    `gorm:"type:varchar(32)"`
	Type         OracleType `gorm:"type:varchar(20);not null"`
	Endpoint     *string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Oracle) TableName() string {
	return "oracles"
}

// NewOracle creates a new oracle routing rule
func NewOracle(name, partyType string, oracleType OracleType, currency, partySubType, endpoint *string) (*Oracle, error) {
	if err := validateOracleName(name); err != nil {
		return nil, err
	}
	if err := validateOraclePartyType(partyType); err != nil {
		return nil, err
	}
	if err := ValidateOracleType(oracleType); err != nil {
		return nil, err
	}
	endpoint = normalizeOptional(endpoint)
	if oracleType == OracleTypeRemoteHTTP && endpoint == nil {
		return nil, shared.NewDomainError("INVALID_ENDPOINT", "endpoint is required for remote-http oracles")
	}
	if oracleType == OracleTypeBuiltin && endpoint != nil {
		return nil, shared.NewDomainError("INVALID_ENDPOINT", "endpoint is only allowed for remote-http oracles")
	}
	currency = normalizeCurrency(currency)
	if currency != nil && len(*currency) != 3 {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "currency must be a 3-letter ISO 4217 code")
	}

	oracle := &Oracle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		PartyType:         strings.ToUpper(strings.TrimSpace(partyType)),
		Currency:          currency,
		PartySubType:      normalizeOptional(partySubType),
		Type:              oracleType,
		Endpoint:          endpoint,
	}

	oracle.AddDomainEvent(NewOracleRegisteredEvent(oracle))

	return oracle, nil
}

// NewBuiltinOracle creates an oracle backed by this service's own store
func NewBuiltinOracle(name, partyType string, currency *string) (*Oracle, error) {
	return NewOracle(name, partyType, OracleTypeBuiltin, currency, nil, nil)
}

// NewRemoteOracle creates an oracle backed by an external HTTP oracle service
func NewRemoteOracle(name, partyType, endpoint string, currency *string) (*Oracle, error) {
	return NewOracle(name, partyType, OracleTypeRemoteHTTP, currency, nil, &endpoint)
}

// IsBuiltin returns true if the oracle is served by the built-in store
func (o *Oracle) IsBuiltin() bool {
	return o.Type == OracleTypeBuiltin
}

// IsRemote returns true if the oracle delegates to an external HTTP service
func (o *Oracle) IsRemote() bool {
	return o.Type == OracleTypeRemoteHTTP
}

// IsWildcard returns true if the oracle routes its party type for any currency
func (o *Oracle) IsWildcard() bool {
	return o.Currency == nil
}

// ValidateOracleType rejects oracle types no provider implements
func ValidateOracleType(t OracleType) error {
	switch t {
	case OracleTypeBuiltin, OracleTypeRemoteHTTP:
		return nil
	default:
		return NewUnsupportedOracleTypeError(string(t))
	}
}

// Validation functions

func validateOracleName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Oracle name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Oracle name cannot exceed 200 characters")
	}
	return nil
}

func validateOraclePartyType(partyType string) error {
	partyType = strings.TrimSpace(partyType)
	if partyType == "" {
		return shared.NewDomainError("INVALID_PARTY_TYPE", "Oracle party type cannot be empty")
	}
	if len(partyType) > 32 {
		return shared.NewDomainError("INVALID_PARTY_TYPE", "Oracle party type cannot exceed 32 characters")
	}
	for _, r := range partyType {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_PARTY_TYPE", "Oracle party type can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
