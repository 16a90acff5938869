package model

import "camp-signup-system/internal/global/serializer"

type Activity struct {
	Model
	Name       string `gorm:"type:varchar(80);not null" json:"name"`
	Difficulty int    `gorm:"not null" json:"difficulty"` // 难度等级
	// 删除活动时由外键级联删除报名
	Signups []Signup `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"signups,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) Attrs() map[string]any {
	return map[string]any{
		"id":         a.ID,
		"name":       a.Name,
		"difficulty": a.Difficulty,
	}
}

func (a *Activity) Relations() map[string]serializer.Relation {
	return map[string]serializer.Relation{
		"signups": serializer.Many(a.Signups),
	}
}

func (a *Activity) SerializeRules() []string {
	return []string{"-signups.activity", "-campers.activities"}
}
