package server

import (
	"camp-signup-system/internal/model"
	"camp-signup-system/internal/repository"
	"context"

	"gorm.io/gorm"
)

type seedCamper struct {
	name string
	age  int
}

type seedActivity struct {
	name       string
	difficulty int
}

var (
	seedCampers = []seedCamper{
		{"Caitlin", 8}, {"Lizzie", 9}, {"Ben", 11}, {"Tom", 12}, {"Morgan", 17},
	}
	seedActivities = []seedActivity{
		{"Archery", 2}, {"Swimming", 3}, {"Canoeing", 4}, {"Hiking", 1}, {"Arts and Crafts", 1},
	}
)

// Seed 写入示例营员和活动，已有活动时不做任何事；返回是否写入
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Activity{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, c := range seedCampers {
		name, age := c.name, c.age
		if _, err := repository.CreateCamper(ctx, db, repository.CamperInput{Name: &name, Age: &age}); err != nil {
			return false, err
		}
	}
	for _, a := range seedActivities {
		name, difficulty := a.name, a.difficulty
		if _, err := repository.CreateActivity(ctx, db, repository.ActivityInput{Name: &name, Difficulty: &difficulty}); err != nil {
			return false, err
		}
	}
	return true, nil
}
