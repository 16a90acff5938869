package tracing

import (
	"camp-signup-system/config"
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 为每次数据库操作在当前请求的 transaction 下创建子 span
type GormTracingPlugin struct {
	// 只保留耗时超过阈值的 span，0 表示全部保留
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	ms := config.Get().Sentry.DBSlowThresholdMs
	return &GormTracingPlugin{
		slowThreshold: time.Duration(ms) * time.Millisecond,
	}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		name      string
		operation string
		before    func(string, func(*gorm.DB)) error
		after     func(string, func(*gorm.DB)) error
	}{
		{"create", "db.sql.create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", "db.sql.query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", "db.sql.update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", "db.sql.delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", "db.sql.row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", "db.sql.raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range hooks {
		if err := h.before(callbackPrefix+":before_"+h.name, p.beforeCallback(h.operation)); err != nil {
			return err
		}
		if err := h.after(callbackPrefix+":after_"+h.name, p.afterCallback); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) beforeCallback(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		db.InstanceSet(gormStartKey, time.Now())

		parent := sentry.SpanFromContext(db.Statement.Context)
		if parent == nil {
			return
		}
		span := parent.StartChild(operation)
		// 只记录表名，避免把参数写进 span
		span.Description = db.Statement.Table
		span.SetData("db.system", db.Dialector.Name())

		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) afterCallback(db *gorm.DB) {
	if db.Statement == nil {
		return
	}
	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	start, ok := startVal.(time.Time)
	if !ok {
		return
	}
	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	if p.slowThreshold > 0 && time.Since(start) < p.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}
	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}
