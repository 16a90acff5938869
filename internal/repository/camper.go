package repository

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityCamper = "Camper"

func CreateCamper(ctx context.Context, db *gorm.DB, in CamperInput) (*model.Camper, error) {
	if err := ValidateCamper(in, false); err != nil {
		return nil, err
	}
	camper := &model.Camper{Name: *in.Name, Age: *in.Age}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(camper).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return camper, nil
}

// GetCamper relations 为需要预加载的关联，例如 "Signups.Activity"
func GetCamper(ctx context.Context, db *gorm.DB, id uint, relations ...string) (*model.Camper, error) {
	var camper model.Camper
	if err := first(preload(db.WithContext(ctx), relations), entityCamper, id, &camper); err != nil {
		return nil, err
	}
	return &camper, nil
}

func ListCampers(ctx context.Context, db *gorm.DB) ([]model.Camper, error) {
	var campers []model.Camper
	err := db.WithContext(ctx).Order("id").Find(&campers).Error
	return campers, err
}

// UpdateCamper 部分更新，只修改请求中出现的字段
func UpdateCamper(ctx context.Context, db *gorm.DB, id uint, in CamperInput) (*model.Camper, error) {
	var camper model.Camper
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := first(tx, entityCamper, id, &camper); err != nil {
			return err
		}
		if err := ValidateCamper(in, true); err != nil {
			return err
		}
		if in.Name != nil {
			camper.Name = *in.Name
		}
		if in.Age != nil {
			camper.Age = *in.Age
		}
		return tx.Omit(clause.Associations).Save(&camper).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &camper, nil
}

// DeleteCamper 删除营员，其报名由外键级联删除
func DeleteCamper(ctx context.Context, db *gorm.DB, id uint) error {
	return translate(db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Camper{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFound(entityCamper, id)
		}
		return nil
	}))
}

// ActivitiesForCamper 营员报名过的活动（通过 signups 推导，去重）
func ActivitiesForCamper(ctx context.Context, db *gorm.DB, id uint) ([]model.Activity, error) {
	db = db.WithContext(ctx)
	ok, err := exists[model.Camper](db, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound(entityCamper, id)
	}

	var activities []model.Activity
	sub := db.Model(&model.Signup{}).Select("activity_id").Where("camper_id = ?", id)
	err = db.Where("id IN (?)", sub).Order("id").Find(&activities).Error
	return activities, err
}
