package model

import "camp-signup-system/internal/global/serializer"

const (
	SignupMinTime = 0
	SignupMaxTime = 23
)

// Signup 营员报名某个活动，time 为整点（0-23）
type Signup struct {
	Model
	Time       int       `gorm:"not null" json:"time"`
	CamperID   uint      `gorm:"not null;index" json:"camper_id"`
	ActivityID uint      `gorm:"not null;index" json:"activity_id"`
	Camper     *Camper   `gorm:"constraint:OnDelete:CASCADE" json:"camper,omitempty"`
	Activity   *Activity `gorm:"constraint:OnDelete:CASCADE" json:"activity,omitempty"`
}

func (Signup) TableName() string {
	return "signups"
}

func (s *Signup) Attrs() map[string]any {
	return map[string]any{
		"id":          s.ID,
		"time":        s.Time,
		"camper_id":   s.CamperID,
		"activity_id": s.ActivityID,
	}
}

// Relations 只包含已预加载的关联
func (s *Signup) Relations() map[string]serializer.Relation {
	rels := map[string]serializer.Relation{}
	if s.Camper != nil {
		rels["camper"] = serializer.One(s.Camper)
	}
	if s.Activity != nil {
		rels["activity"] = serializer.One(s.Activity)
	}
	return rels
}

func (s *Signup) SerializeRules() []string {
	return []string{"-camper.signups", "-activity.signups"}
}
