package activity

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/global/params"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/global/serializer"
	"camp-signup-system/internal/repository"

	"github.com/gin-gonic/gin"
)

var (
	listFields   = []string{"id", "name", "difficulty"}
	camperFields = []string{"id", "name", "age"}
)

var errActivityNotFound = response.ErrNotFound.WithMessage("Activity not found")

// ListActivities 获取全部活动
func (m *ModuleActivity) ListActivities(c *gin.Context) {
	activities, err := repository.ListActivities(c.Request.Context(), m.db)
	if err != nil {
		log.Error("查询活动列表失败", "error", err)
		response.Fail(c, response.FromReadErr(err))
		return
	}
	response.Success(c, serializer.OnlyMany(activities, listFields...))
}

// DeleteActivity 删除活动，相关报名一并删除
func (m *ModuleActivity) DeleteActivity(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Fail(c, errActivityNotFound)
		return
	}

	if err := repository.DeleteActivity(c.Request.Context(), m.db, id); err != nil {
		if errs.IsNotFound(err) {
			log.Warn("活动不存在", "id", id)
		} else {
			log.Error("删除活动失败", "error", err, "id", id)
		}
		response.Fail(c, response.FromWriteErr(err))
		return
	}

	log.Info("活动删除成功", "id", id)
	response.NoContent(c)
}

// ListActivityCampers 报名了该活动的营员
func (m *ModuleActivity) ListActivityCampers(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Fail(c, errActivityNotFound)
		return
	}

	campers, err := repository.CampersForActivity(c.Request.Context(), m.db, id)
	if err != nil {
		response.Fail(c, response.FromReadErr(err))
		return
	}
	response.Success(c, serializer.OnlyMany(campers, camperFields...))
}
