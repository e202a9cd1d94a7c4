// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DirectoryMetrics provides directory-level metrics for the lookup service.
// It tracks the registered oracle set, the association population, and the
// outbox delivery backlog.
type DirectoryMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Gauge metrics (point-in-time values)
	registeredOracles       *Gauge
	participantAssociations *Gauge
	outboxBacklog           *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	stateProvider DirectoryStateProvider
}

// DirectoryStateProvider provides directory state counts for periodic metrics
// collection. This interface lets the telemetry layer query directory state
// without depending on the persistence layer directly.
type DirectoryStateProvider interface {
	// CountOraclesByType returns the number of registered oracles per oracle type
	CountOraclesByType(ctx context.Context) (map[string]int64, error)

	// CountAssociationsByPartyType returns the number of stored associations per party type
	CountAssociationsByPartyType(ctx context.Context) (map[string]int64, error)

	// CountOutboxByStatus returns the number of outbox entries per delivery status
	CountOutboxByStatus(ctx context.Context) (map[string]int64, error)
}

// DirectoryMetricsConfig holds configuration for directory metrics.
type DirectoryMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 1 minute
	StateProvider   DirectoryStateProvider
}

// NewDirectoryMetrics creates a new DirectoryMetrics instance.
func NewDirectoryMetrics(cfg DirectoryMetricsConfig) (*DirectoryMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dm := &DirectoryMetrics{
		meter:         cfg.Meter,
		logger:        logger,
		stopChan:      make(chan struct{}),
		stateProvider: cfg.StateProvider,
	}

	var err error

	dm.registeredOracles, err = NewGauge(
		cfg.Meter,
		"als_registered_oracles",
		"Number of registered oracle routing rules",
		"{oracles}",
	)
	if err != nil {
		return nil, err
	}

	dm.participantAssociations, err = NewGauge(
		cfg.Meter,
		"als_participant_associations",
		"Number of stored participant associations",
		"{associations}",
	)
	if err != nil {
		return nil, err
	}

	dm.outboxBacklog, err = NewGauge(
		cfg.Meter,
		"als_outbox_entries",
		"Number of outbox entries per delivery status",
		"{entries}",
	)
	if err != nil {
		return nil, err
	}

	return dm, nil
}

// RecordRegisteredOracles records the number of registered oracles of a type.
// This is a gauge metric that should be updated periodically.
func (dm *DirectoryMetrics) RecordRegisteredOracles(ctx context.Context, oracleType string, count int64) {
	dm.registeredOracles.Record(ctx, count,
		AttrOracleType.String(oracleType),
	)
}

// RecordParticipantAssociations records the association count for a party type.
// This is a gauge metric that should be updated periodically.
func (dm *DirectoryMetrics) RecordParticipantAssociations(ctx context.Context, partyType string, count int64) {
	dm.participantAssociations.Record(ctx, count,
		AttrPartyType.String(partyType),
	)
}

// RecordOutboxBacklog records the outbox entry count for a delivery status.
// This is a gauge metric that should be updated periodically.
func (dm *DirectoryMetrics) RecordOutboxBacklog(ctx context.Context, status string, count int64) {
	dm.outboxBacklog.Record(ctx, count,
		AttrOutboxStatus.String(status),
	)
}

// StartPeriodicCollection starts periodic collection of gauge metrics.
// This is non-blocking - use Stop() to stop collection.
func (dm *DirectoryMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	dm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = time.Minute
		}

		go dm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (dm *DirectoryMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	dm.collectDirectoryMetrics(ctx)

	for {
		select {
		case <-dm.stopChan:
			dm.logger.Info("Stopping periodic directory metrics collection")
			return
		case <-ctx.Done():
			dm.logger.Info("Context cancelled, stopping periodic directory metrics collection")
			return
		case <-ticker.C:
			dm.collectDirectoryMetrics(ctx)
		}
	}
}

// collectDirectoryMetrics collects all directory gauge metrics.
func (dm *DirectoryMetrics) collectDirectoryMetrics(ctx context.Context) {
	if dm.stateProvider == nil {
		dm.logger.Debug("No state provider configured, skipping directory metrics collection")
		return
	}

	oraclesByType, err := dm.stateProvider.CountOraclesByType(ctx)
	if err != nil {
		dm.logger.Warn("Failed to count oracles for metrics collection", zap.Error(err))
	} else {
		for oracleType, count := range oraclesByType {
			dm.RecordRegisteredOracles(ctx, oracleType, count)
		}
	}

	associationsByPartyType, err := dm.stateProvider.CountAssociationsByPartyType(ctx)
	if err != nil {
		dm.logger.Warn("Failed to count associations for metrics collection", zap.Error(err))
	} else {
		for partyType, count := range associationsByPartyType {
			dm.RecordParticipantAssociations(ctx, partyType, count)
		}
	}

	outboxByStatus, err := dm.stateProvider.CountOutboxByStatus(ctx)
	if err != nil {
		dm.logger.Warn("Failed to count outbox entries for metrics collection", zap.Error(err))
	} else {
		for status, count := range outboxByStatus {
			dm.RecordOutboxBacklog(ctx, status, count)
		}
	}
}

// Stop stops the periodic collection.
func (dm *DirectoryMetrics) Stop() {
	dm.stopOnce.Do(func() {
		close(dm.stopChan)
	})
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewDirectoryMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
