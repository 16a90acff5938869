package home

import (
	"camp-signup-system/internal/global/logger"
	"log/slog"

	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleHome struct{}

func (p *ModuleHome) GetName() string {
	return "Home"
}

func (p *ModuleHome) Init(_ *gorm.DB) {
	log = logger.New("Home")
}
