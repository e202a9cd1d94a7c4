// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"

	"gorm.io/gorm"
)

// GormDirectoryStateProvider implements DirectoryStateProvider using GORM.
// It queries the directory tables directly for aggregated counts.
type GormDirectoryStateProvider struct {
	db *gorm.DB
}

// NewGormDirectoryStateProvider creates a new GormDirectoryStateProvider.
func NewGormDirectoryStateProvider(db *gorm.DB) *GormDirectoryStateProvider {
	return &GormDirectoryStateProvider{db: db}
}

type labelCount struct {
	Label string `gorm:"column:label"`
	Count int64  `gorm:"column:count"`
}

// CountOraclesByType returns the number of registered oracles per oracle type.
func (p *GormDirectoryStateProvider) CountOraclesByType(ctx context.Context) (map[string]int64, error) {
	var results []labelCount
	err := p.db.WithContext(ctx).
		Table("oracles").
		Select("type AS label, COUNT(*) AS count").
		Group("type").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(results), nil
}

// CountAssociationsByPartyType returns the number of stored associations per party type.
func (p *GormDirectoryStateProvider) CountAssociationsByPartyType(ctx context.Context) (map[string]int64, error) {
	var results []labelCount
	err := p.db.WithContext(ctx).
		Table("participant_associations").
		Select("party_type AS label, COUNT(*) AS count").
		Group("party_type").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(results), nil
}

// CountOutboxByStatus returns the number of outbox entries per delivery status.
func (p *GormDirectoryStateProvider) CountOutboxByStatus(ctx context.Context) (map[string]int64, error) {
	var results []labelCount
	err := p.db.WithContext(ctx).
		Table("outbox_events").
		Select("status AS label, COUNT(*) AS count").
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return toCountMap(results), nil
}

func toCountMap(results []labelCount) map[string]int64 {
	counts := make(map[string]int64, len(results))
	for _, r := range results {
		counts[r.Label] = r.Count
	}
	return counts
}

// Ensure GormDirectoryStateProvider implements DirectoryStateProvider
var _ DirectoryStateProvider = (*GormDirectoryStateProvider)(nil)
