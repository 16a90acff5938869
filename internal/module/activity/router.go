package activity

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activityGroup := r.Group("/activities")
	{
		activityGroup.GET("", m.ListActivities)
		activityGroup.DELETE("/:id", m.DeleteActivity)

		// 报名了该活动的营员
		activityGroup.GET("/:id/campers", m.ListActivityCampers)
	}
}
