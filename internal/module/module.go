package module

import (
	"camp-signup-system/internal/module/activity"
	"camp-signup-system/internal/module/camper"
	"camp-signup-system/internal/module/home"
	"camp-signup-system/internal/module/signup"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module interface {
	GetName() string
	Init(db *gorm.DB)
	InitRouter(r *gin.RouterGroup)
}

// Modules 返回全部模块的新实例
func Modules() []Module {
	// Register your module here
	return []Module{
		&home.ModuleHome{},
		&camper.ModuleCamper{},
		&activity.ModuleActivity{},
		&signup.ModuleSignup{},
	}
}
