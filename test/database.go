package test

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/database"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB 每次返回一个独立的、已迁移的内存 sqlite 数据库
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Database{
		Driver: config.DriverSqlite,
		Sqlite: config.Sqlite{Path: ":memory:"},
	}, config.ModeRelease)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Count 统计表中行数
func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
