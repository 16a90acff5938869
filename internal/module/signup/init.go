package signup

import (
	"camp-signup-system/internal/global/logger"
	"log/slog"

	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleSignup struct {
	db *gorm.DB
}

func (m *ModuleSignup) GetName() string {
	return "Signup"
}

func (m *ModuleSignup) Init(db *gorm.DB) {
	log = logger.New("Signup")
	m.db = db
}
