package server

import (
	"camp-signup-system/config"
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/internal/global/middleware"
	"camp-signup-system/internal/global/sentry"
	"camp-signup-system/internal/module"
	"camp-signup-system/tools"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var log *slog.Logger

func Init(configPath string) {
	config.Init(configPath)
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	} else if sentry.Enabled() {
		log.Info("Sentry Enabled")
	}

	database.Init()
	log.Info("Database connected", "driver", string(config.Get().Database.Driver))
}

// NewEngine 组装中间件并注册全部模块，db 由调用方提供
func NewEngine(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	l := logger.New("Server")

	r := gin.New()
	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	// Recovery 在 Sentry 之前注册，Sentry 上报后重新抛出的 panic 由它处理
	r.Use(middleware.Recovery())
	r.Use(sentry.Middleware())

	group := r.Group("/" + cfg.Prefix)
	for _, m := range module.Modules() {
		l.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init(db)
		m.InitRouter(group)
	}
	return r
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	defer sentry.Flush(2 * time.Second)

	r := NewEngine(database.DB)
	addr := config.Get().Host + ":" + config.Get().Port
	log.Info("Server listening", "addr", addr)
	tools.PanicOnErr(r.Run(addr))
}
