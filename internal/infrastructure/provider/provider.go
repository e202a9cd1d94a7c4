// Package provider implements the pluggable oracle backends that perform the
// actual party association lookups and writes for one registered oracle.
package provider

import (
	"github.com/finswitch/account-lookup/internal/domain/directory"
)

// Pinger reports reachability of the store backing the built-in provider
type Pinger interface {
	Ping() error
}

// ProviderFactory constructs the provider variant matching an oracle's type
type ProviderFactory interface {
	Create(oracle *directory.Oracle) (directory.OracleProvider, error)
}
