package repository

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/model"
	"context"

	"gorm.io/gorm"
)

const entityActivity = "Activity"

func CreateActivity(ctx context.Context, db *gorm.DB, in ActivityInput) (*model.Activity, error) {
	if err := ValidateActivity(in); err != nil {
		return nil, err
	}
	activity := &model.Activity{Name: *in.Name, Difficulty: *in.Difficulty}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(activity).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return activity, nil
}

func GetActivity(ctx context.Context, db *gorm.DB, id uint, relations ...string) (*model.Activity, error) {
	var activity model.Activity
	if err := first(preload(db.WithContext(ctx), relations), entityActivity, id, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func ListActivities(ctx context.Context, db *gorm.DB) ([]model.Activity, error) {
	var activities []model.Activity
	err := db.WithContext(ctx).Order("id").Find(&activities).Error
	return activities, err
}

// DeleteActivity 删除活动，其报名由外键级联删除
func DeleteActivity(ctx context.Context, db *gorm.DB, id uint) error {
	return translate(db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Activity{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFound(entityActivity, id)
		}
		return nil
	}))
}

// CampersForActivity 报名了该活动的营员（通过 signups 推导，去重）
func CampersForActivity(ctx context.Context, db *gorm.DB, id uint) ([]model.Camper, error) {
	db = db.WithContext(ctx)
	ok, err := exists[model.Activity](db, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NotFound(entityActivity, id)
	}

	var campers []model.Camper
	sub := db.Model(&model.Signup{}).Select("camper_id").Where("activity_id = ?", id)
	err = db.Where("id IN (?)", sub).Order("id").Find(&campers).Error
	return campers, err
}
