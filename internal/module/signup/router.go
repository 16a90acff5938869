package signup

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleSignup) InitRouter(r *gin.RouterGroup) {
	signupGroup := r.Group("/signups")
	{
		signupGroup.POST("", m.CreateSignup)

		// 导出报名名单 Excel
		signupGroup.GET("/export", m.ExportSignups)
	}
}
