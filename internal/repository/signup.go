package repository

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/model"
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"
)

const entitySignup = "Signup"

// CreateSignup 创建报名，返回的记录已加载 Camper 和 Activity
func CreateSignup(ctx context.Context, db *gorm.DB, in SignupInput) (*model.Signup, error) {
	if err := ValidateSignup(in); err != nil {
		return nil, err
	}
	signup := &model.Signup{
		CamperID:   *in.CamperID,
		ActivityID: *in.ActivityID,
		Time:       *in.Time,
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			camper   model.Camper
			activity model.Activity
			result   *multierror.Error
		)
		if err := tx.First(&camper, signup.CamperID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			result = multierror.Append(result, errs.Reference("camper", signup.CamperID))
		}
		if err := tx.First(&activity, signup.ActivityID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			result = multierror.Append(result, errs.Reference("activity", signup.ActivityID))
		}
		if err := result.ErrorOrNil(); err != nil {
			return err
		}

		if err := tx.Omit("Camper", "Activity").Create(signup).Error; err != nil {
			return err
		}
		signup.Camper = &camper
		signup.Activity = &activity
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return signup, nil
}

func GetSignup(ctx context.Context, db *gorm.DB, id uint, relations ...string) (*model.Signup, error) {
	var signup model.Signup
	if err := first(preload(db.WithContext(ctx), relations), entitySignup, id, &signup); err != nil {
		return nil, err
	}
	return &signup, nil
}

func ListSignups(ctx context.Context, db *gorm.DB, relations ...string) ([]model.Signup, error) {
	var signups []model.Signup
	err := preload(db.WithContext(ctx), relations).Order("id").Find(&signups).Error
	return signups, err
}

func DeleteSignup(ctx context.Context, db *gorm.DB, id uint) error {
	return translate(db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Signup{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFound(entitySignup, id)
		}
		return nil
	}))
}

// RosterRow 报名名单中的一行
type RosterRow struct {
	SignupID uint   `excel:"Signup"`
	Camper   string `excel:"Camper"`
	Activity string `excel:"Activity"`
	Time     int    `excel:"Time"`
}

// SignupRoster 全部报名及营员、活动名称，按时间排序
func SignupRoster(ctx context.Context, db *gorm.DB) ([]RosterRow, error) {
	var rows []RosterRow
	err := db.WithContext(ctx).
		Table("signups").
		Select("signups.id AS signup_id, campers.name AS camper, activities.name AS activity, signups.time AS time").
		Joins("JOIN campers ON campers.id = signups.camper_id").
		Joins("JOIN activities ON activities.id = signups.activity_id").
		Order("signups.time, signups.id").
		Scan(&rows).Error
	return rows, err
}
