package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Driver string

const (
	DriverMysql  Driver = "mysql"
	DriverSqlite Driver = "sqlite"
)

type Config struct {
	Host     string   `mapstructure:"host"`
	Port     string   `mapstructure:"port"`
	Prefix   string   `mapstructure:"prefix"`
	Mode     Mode     `mapstructure:"mode"`
	Database Database `mapstructure:"database"`
	Log      Log      `mapstructure:"log"`
	Sentry   Sentry   `mapstructure:"sentry"`
}

type Database struct {
	Driver Driver `mapstructure:"driver"` // mysql 或 sqlite
	Mysql  Mysql  `mapstructure:"mysql"`
	Sqlite Sqlite `mapstructure:"sqlite"`
}

type Mysql struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `split_words:"true" mapstructure:"db_name"`
}

type Sqlite struct {
	Path string `mapstructure:"path"` // ":memory:" 表示内存数据库
}

type Log struct {
	FilePath   string `split_words:"true" mapstructure:"file_path"`   // 日志文件路径
	Level      string `mapstructure:"level"`                          // 日志级别：debug, info, warn, error
	MaxSize    int    `split_words:"true" mapstructure:"max_size"`    // 日志文件最大大小（MB）
	MaxBackups int    `split_words:"true" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `split_words:"true" mapstructure:"max_age"`     // 日志文件保留天数
	Compress   bool   `mapstructure:"compress"`                       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn               string  `mapstructure:"dsn"`
	Environment       string  `mapstructure:"environment"`
	SampleRate        float64 `split_words:"true" mapstructure:"sample_rate"`          // 性能追踪采样率
	DBSlowThresholdMs int     `split_words:"true" mapstructure:"db_slow_threshold_ms"` // 慢查询阈值，0 表示全部记录
}
