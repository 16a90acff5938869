package camper

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleCamper) InitRouter(r *gin.RouterGroup) {
	camperGroup := r.Group("/campers")
	{
		camperGroup.GET("", m.ListCampers)
		camperGroup.POST("", m.CreateCamper)
		camperGroup.GET("/:id", m.GetCamper)
		camperGroup.PATCH("/:id", m.UpdateCamper)

		// 营员报名过的活动
		camperGroup.GET("/:id/activities", m.ListCamperActivities)
	}
}
