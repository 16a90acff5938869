package activity

import (
	"camp-signup-system/internal/global/logger"
	"log/slog"

	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleActivity struct {
	db *gorm.DB
}

func (m *ModuleActivity) GetName() string {
	return "Activity"
}

func (m *ModuleActivity) Init(db *gorm.DB) {
	log = logger.New("Activity")
	m.db = db
}
