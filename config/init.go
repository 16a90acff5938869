package config

import (
	"errors"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 CAMP_PORT、CAMP_DATABASE_MYSQL_HOST
const EnvPrefix = "CAMP"

var (
	cfg *Config
	mu  sync.RWMutex
)

// Default 返回内置默认配置：debug 模式 + 本地 sqlite 文件
func Default() *Config {
	return &Config{
		Host: "0.0.0.0",
		Port: "5555",
		Mode: ModeDebug,
		Database: Database{
			Driver: DriverSqlite,
			Mysql: Mysql{
				Host:   "127.0.0.1",
				Port:   "3306",
				DBName: "camp",
			},
			Sqlite: Sqlite{Path: "app.db"},
		},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
		},
		Sentry: Sentry{SampleRate: 1.0},
	}
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("host", d.Host)
	v.SetDefault("port", d.Port)
	v.SetDefault("prefix", d.Prefix)
	v.SetDefault("mode", string(d.Mode))
	v.SetDefault("database.driver", string(d.Database.Driver))
	v.SetDefault("database.mysql.host", d.Database.Mysql.Host)
	v.SetDefault("database.mysql.port", d.Database.Mysql.Port)
	v.SetDefault("database.mysql.db_name", d.Database.Mysql.DBName)
	v.SetDefault("database.sqlite.path", d.Database.Sqlite.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("sentry.sample_rate", d.Sentry.SampleRate)
}

// Load 读取配置：.env -> 配置文件 -> 环境变量，后者覆盖前者
// path 为空时在工作目录和 ./config 下查找 config.yaml，找不到则只使用默认值
func Load(path string) (*Config, error) {
	// .env 文件是可选的
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, Default())
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// 显式指定的配置文件必须存在
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Init 加载全局配置，失败直接 panic
func Init(path string) {
	c, err := Load(path)
	if err != nil {
		panic(err)
	}
	Set(c)
}

// Set 替换全局配置
func Set(c *Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
}

// Get 获取全局配置，未初始化时返回默认配置
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = Default()
	}
	return cfg
}
