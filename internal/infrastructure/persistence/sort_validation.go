package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// Common allowed sort fields for entities with base fields
// These are the common fields present in most entities

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// OracleSortFields contains allowed sort fields for oracles
var OracleSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"party_type": true,
	"type":       true,
	"currency":   true,
}

// AssociationSortFields contains allowed sort fields for participant associations
var AssociationSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"fsp_id":         true,
	"party_type":     true,
	"party_id":       true,
	"party_sub_type": true,
	"currency":       true,
}

// OutboxSortFields contains allowed sort fields for outbox entries
var OutboxSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"event_type":    true,
	"status":        true,
	"retry_count":   true,
	"next_retry_at": true,
	"processed_at":  true,
}
