package database

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/sentry/tracing"
	"camp-signup-system/internal/model"
	"camp-signup-system/tools"
	"fmt"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// autoMigrateModels 自动迁移的模型，按外键依赖排列
var autoMigrateModels = []any{
	&model.Camper{},
	&model.Activity{},
	&model.Signup{},
}

// MysqlDSN 按配置拼接 MySQL 连接串
func MysqlDSN(c config.Mysql) string {
	dsn := mysqldriver.NewConfig()
	dsn.User = c.Username
	dsn.Passwd = c.Password
	dsn.Net = "tcp"
	dsn.Addr = c.Host + ":" + c.Port
	dsn.DBName = c.DBName
	dsn.ParseTime = true
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}

// SqliteDSN 返回开启外键约束的 sqlite 连接串，级联删除依赖外键
func SqliteDSN(c config.Sqlite) string {
	path := c.Path
	if path == "" || path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + path + sep + "_foreign_keys=on"
}

func dialector(c config.Database) (gorm.Dialector, error) {
	switch c.Driver {
	case config.DriverMysql:
		return mysql.Open(MysqlDSN(c.Mysql)), nil
	case config.DriverSqlite, "":
		return sqlite.Open(SqliteDSN(c.Sqlite)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// Open 建立连接，不做迁移
func Open(c config.Database, mode config.Mode) (*gorm.DB, error) {
	d, err := dialector(c)
	if err != nil {
		return nil, err
	}
	gormConfig := &gorm.Config{
		NamingStrategy: NamingStrategy{},
	}
	switch mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	default:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(d, gormConfig)
	if err != nil {
		return nil, err
	}

	if c.Driver != config.DriverMysql && (c.Sqlite.Path == "" || c.Sqlite.Path == ":memory:") {
		// 内存库每个连接都是独立的数据库，只能保留一个连接
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate 自动迁移全部模型
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(autoMigrateModels...)
}

func Init() {
	cfg := config.Get()
	db, err := Open(cfg.Database, cfg.Mode)
	tools.PanicOnErr(err)

	if tracing.IsEnabled() {
		tools.PanicOnErr(db.Use(tracing.NewGormTracingPlugin()))
	}
	tools.PanicOnErr(Migrate(db))
	DB = db
}
