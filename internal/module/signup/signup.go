package signup

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/global/serializer"
	"camp-signup-system/internal/repository"
	"camp-signup-system/tools"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var detailFields = []string{"id", "camper_id", "activity_id", "time", "activity", "camper"}

const rosterSheet = "Roster"

// CreateSignup 营员报名活动
func (m *ModuleSignup) CreateSignup(c *gin.Context) {
	var req repository.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定报名请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()).WithOrigin(err))
		return
	}

	signup, err := repository.CreateSignup(c.Request.Context(), m.db, req)
	if err != nil {
		log.Warn("创建报名失败", "error", err, "messages", errs.Messages(err))
		response.Fail(c, response.FromWriteErr(err))
		return
	}

	log.Info("报名成功",
		"id", signup.ID,
		"camper_id", signup.CamperID,
		"activity_id", signup.ActivityID,
		"time", signup.Time,
	)
	response.Created(c, serializer.Only(signup, detailFields...))
}

// ExportSignups 以 Excel 导出全部报名，按时间排序
func (m *ModuleSignup) ExportSignups(c *gin.Context) {
	rows, err := repository.SignupRoster(c.Request.Context(), m.db)
	if err != nil {
		log.Error("查询报名名单失败", "error", err)
		response.Fail(c, response.FromReadErr(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.WriteSheet(f, rosterSheet, rows); err != nil {
		log.Error("生成报名名单失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	// 只保留名单工作表
	if err := f.DeleteSheet("Sheet1"); err == nil {
		if idx, err := f.GetSheetIndex(rosterSheet); err == nil && idx >= 0 {
			f.SetActiveSheet(idx)
		}
	}

	name := fmt.Sprintf("signups-%s.xlsx", time.Now().Format("20060102"))
	if err := tools.SendWorkbook(c, f, name); err != nil {
		log.Error("发送报名名单失败", "error", err)
		return
	}
	log.Info("导出报名名单成功", "count", len(rows))
}
