package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled          bool          // Enable database tracing
	LogFullSQL       bool          // Include full SQL in spans, dev only
	SlowQueryThresh  time.Duration // Queries above this get a slow_query_warning event
	DBSystem         string        // Database system name, default "postgresql"
	WithoutVariables bool          // Strip bound values from recorded SQL
}

// DefaultDBTracingConfig returns the secure defaults: tracing off, SQL text
// and bound values excluded from spans.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		Enabled:          false,
		LogFullSQL:       false,
		SlowQueryThresh:  200 * time.Millisecond,
		DBSystem:         "postgresql",
		WithoutVariables: true,
	}
}

// callbackRegistrar is the piece of gorm's callback API the tracing and
// metrics plugins register through.
type callbackRegistrar interface {
	Register(name string, fn func(*gorm.DB)) error
}

// beforeHooks returns a registration point ahead of each gorm statement
// type, keyed by operation name.
func beforeHooks(db *gorm.DB) map[string]callbackRegistrar {
	return map[string]callbackRegistrar{
		"create": db.Callback().Create().Before("gorm:create"),
		"query":  db.Callback().Query().Before("gorm:query"),
		"update": db.Callback().Update().Before("gorm:update"),
		"delete": db.Callback().Delete().Before("gorm:delete"),
		"row":    db.Callback().Row().Before("gorm:row"),
		"raw":    db.Callback().Raw().Before("gorm:raw"),
	}
}

// afterHooks is the counterpart of beforeHooks for post-statement callbacks.
func afterHooks(db *gorm.DB) map[string]callbackRegistrar {
	return map[string]callbackRegistrar{
		"create": db.Callback().Create().After("gorm:create"),
		"query":  db.Callback().Query().After("gorm:query"),
		"update": db.Callback().Update().After("gorm:update"),
		"delete": db.Callback().Delete().After("gorm:delete"),
		"row":    db.Callback().Row().After("gorm:row"),
		"raw":    db.Callback().Raw().After("gorm:raw"),
	}
}

// setQueryStartTime stamps the statement context so the after callbacks can
// measure elapsed time.
func setQueryStartTime(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
	}
}

// annotateQuerySpan enriches the current otelgorm span with row counts, the
// table name, error status and a slow-query event when the statement ran
// longer than thresh. Lookup misses surface as ErrRecordNotFound and are
// not treated as span errors.
func annotateQuerySpan(db *gorm.DB, thresh time.Duration) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}

	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}

	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	startTime, ok := ctx.Value(queryStartTimeKey).(time.Time)
	if !ok {
		return
	}

	elapsed := time.Since(startTime)
	if elapsed > thresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query_warning", trace.WithAttributes(
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
			attribute.Int64("threshold_ms", thresh.Milliseconds()),
		))
	}
}

// DBTracingPlugin wires otelgorm into a gorm.DB and layers slow-query
// detection on top of it.
type DBTracingPlugin struct {
	config DBTracingConfig
	logger *zap.Logger
}

// NewDBTracingPlugin creates a database tracing plugin.
func NewDBTracingPlugin(cfg DBTracingConfig, logger *zap.Logger) *DBTracingPlugin {
	return &DBTracingPlugin{
		config: cfg,
		logger: logger,
	}
}

// RegisterOtelGorm installs the otelgorm plugin plus the timing and
// slow-query callbacks. A no-op when tracing is disabled.
func (p *DBTracingPlugin) RegisterOtelGorm(db *gorm.DB) error {
	if !p.config.Enabled {
		p.logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{
		otelgorm.WithDBName(p.config.DBSystem),
	}
	if !p.config.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}

	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	for op, hook := range beforeHooks(db) {
		if err := hook.Register("otel_timing:before_"+op, setQueryStartTime); err != nil {
			return err
		}
	}

	for op, hook := range afterHooks(db) {
		if err := hook.Register("otel_slow_query:"+op, p.slowQueryCallback); err != nil {
			return err
		}
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.config.LogFullSQL),
		zap.Duration("slow_query_threshold", p.config.SlowQueryThresh),
		zap.String("db_system", p.config.DBSystem),
	)

	return nil
}

func (p *DBTracingPlugin) slowQueryCallback(db *gorm.DB) {
	annotateQuerySpan(db, p.config.SlowQueryThresh)
}

// queryStartTimeKey is the context key for the statement start time.
type contextKey string

const queryStartTimeKey contextKey = "otel_query_start_time"

// WithQueryStartTime returns a context with the query start time set, for
// callers that measure a statement outside the registered callbacks.
func WithQueryStartTime(ctx context.Context) context.Context {
	return context.WithValue(ctx, queryStartTimeKey, time.Now())
}

// DBTracingCallback is the standalone form of the timing callbacks, for
// wiring span annotation onto a gorm.DB without the otelgorm plugin.
type DBTracingCallback struct {
	slowQueryThresh time.Duration
}

// NewDBTracingCallback creates a callback set with the given slow-query
// threshold.
func NewDBTracingCallback(slowQueryThresh time.Duration) *DBTracingCallback {
	return &DBTracingCallback{
		slowQueryThresh: slowQueryThresh,
	}
}

// BeforeCallback stamps the statement context with the start time.
func (c *DBTracingCallback) BeforeCallback(db *gorm.DB) {
	setQueryStartTime(db)
}

// AfterCallback annotates the active span for the finished statement.
func (c *DBTracingCallback) AfterCallback(db *gorm.DB) {
	annotateQuerySpan(db, c.slowQueryThresh)
}

// RegisterCallbacks attaches the before and after callbacks to every
// statement type.
func (c *DBTracingCallback) RegisterCallbacks(db *gorm.DB) error {
	for op, hook := range beforeHooks(db) {
		if err := hook.Register("otel_timing:before_"+op, c.BeforeCallback); err != nil {
			return err
		}
	}
	for op, hook := range afterHooks(db) {
		if err := hook.Register("otel_timing:after_"+op, c.AfterCallback); err != nil {
			return err
		}
	}
	return nil
}
