package camper

import (
	"camp-signup-system/internal/global/logger"
	"log/slog"

	"gorm.io/gorm"
)

var log *slog.Logger

type ModuleCamper struct {
	db *gorm.DB
}

func (m *ModuleCamper) GetName() string {
	return "Camper"
}

func (m *ModuleCamper) Init(db *gorm.DB) {
	log = logger.New("Camper")
	m.db = db
}
