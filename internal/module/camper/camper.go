package camper

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/global/params"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/global/serializer"
	"camp-signup-system/internal/repository"

	"github.com/gin-gonic/gin"
)

// 各端点返回的字段白名单
var (
	listFields     = []string{"id", "name", "age"}
	detailFields   = []string{"id", "name", "age", "signups.activity"}
	activityFields = []string{"id", "name", "difficulty"}
)

var errCamperNotFound = response.ErrNotFound.WithMessage("Camper not found")

// ListCampers 获取全部营员
func (m *ModuleCamper) ListCampers(c *gin.Context) {
	campers, err := repository.ListCampers(c.Request.Context(), m.db)
	if err != nil {
		log.Error("查询营员列表失败", "error", err)
		response.Fail(c, response.FromReadErr(err))
		return
	}
	response.Success(c, serializer.OnlyMany(campers, listFields...))
}

// CreateCamper 创建营员
func (m *ModuleCamper) CreateCamper(c *gin.Context) {
	var req repository.CamperInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定创建营员请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()).WithOrigin(err))
		return
	}

	camper, err := repository.CreateCamper(c.Request.Context(), m.db, req)
	if err != nil {
		log.Warn("创建营员失败", "error", err, "messages", errs.Messages(err))
		response.Fail(c, response.FromWriteErr(err))
		return
	}

	log.Info("营员创建成功", "id", camper.ID, "name", camper.Name)
	response.Created(c, serializer.Only(camper, listFields...))
}

// GetCamper 获取营员详情，包含报名的活动
func (m *ModuleCamper) GetCamper(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Fail(c, errCamperNotFound)
		return
	}

	camper, err := repository.GetCamper(c.Request.Context(), m.db, id, "Signups.Activity")
	if err != nil {
		if errs.IsNotFound(err) {
			log.Warn("营员不存在", "id", id)
		} else {
			log.Error("查询营员失败", "error", err, "id", id)
		}
		response.Fail(c, response.FromReadErr(err))
		return
	}
	response.Success(c, serializer.Only(camper, detailFields...))
}

// UpdateCamper 部分更新营员的 name / age
func (m *ModuleCamper) UpdateCamper(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Fail(c, errCamperNotFound)
		return
	}

	// 先确认营员存在，未知 id 不论请求体如何都返回 404
	if _, err := repository.GetCamper(c.Request.Context(), m.db, id); err != nil {
		if !errs.IsNotFound(err) {
			log.Error("查询营员失败", "error", err, "id", id)
		}
		response.Fail(c, response.FromReadErr(err))
		return
	}

	var req repository.CamperInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定更新营员请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()).WithOrigin(err))
		return
	}

	camper, err := repository.UpdateCamper(c.Request.Context(), m.db, id, req)
	if err != nil {
		log.Warn("更新营员失败", "error", err, "id", id)
		response.Fail(c, response.FromWriteErr(err))
		return
	}

	log.Info("营员更新成功", "id", camper.ID, "name", camper.Name, "age", camper.Age)
	response.Success(c, serializer.Only(camper, listFields...))
}

// ListCamperActivities 营员报名过的活动
func (m *ModuleCamper) ListCamperActivities(c *gin.Context) {
	id, ok := params.ID(c)
	if !ok {
		response.Fail(c, errCamperNotFound)
		return
	}

	activities, err := repository.ActivitiesForCamper(c.Request.Context(), m.db, id)
	if err != nil {
		response.Fail(c, response.FromReadErr(err))
		return
	}
	response.Success(c, serializer.OnlyMany(activities, activityFields...))
}
