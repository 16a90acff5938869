package model

import "camp-signup-system/internal/global/serializer"

const (
	CamperMinAge = 8
	CamperMaxAge = 18
	// NameMaxLen 营员和活动名称的最大字符数，与 varchar(80) 一致
	NameMaxLen = 80
)

type Camper struct {
	Model
	Name string `gorm:"type:varchar(80);not null" json:"name"`
	Age  int    `gorm:"not null" json:"age"`
	// 删除营员时由外键级联删除报名
	Signups []Signup `gorm:"foreignKey:CamperID;constraint:OnDelete:CASCADE" json:"signups,omitempty"`
}

func (Camper) TableName() string {
	return "campers"
}

func (c *Camper) Attrs() map[string]any {
	return map[string]any{
		"id":   c.ID,
		"name": c.Name,
		"age":  c.Age,
	}
}

func (c *Camper) Relations() map[string]serializer.Relation {
	return map[string]serializer.Relation{
		"signups": serializer.Many(c.Signups),
	}
}

func (c *Camper) SerializeRules() []string {
	return []string{"-signups.camper", "-activities.campers"}
}
