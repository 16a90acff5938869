package serializer_test

import (
	"camp-signup-system/internal/global/serializer"
	"camp-signup-system/internal/model"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cyclicGraph 构造一个真正带环的对象图：camper -> signup -> activity -> signup -> camper
func cyclicGraph() (*model.Camper, *model.Activity, *model.Signup) {
	camper := &model.Camper{Model: model.Model{ID: 1}, Name: "Ann", Age: 12}
	activity := &model.Activity{Model: model.Model{ID: 2}, Name: "Archery", Difficulty: 3}
	signup := model.Signup{Model: model.Model{ID: 3}, Time: 9, CamperID: 1, ActivityID: 2, Camper: camper, Activity: activity}
	camper.Signups = []model.Signup{signup}
	activity.Signups = []model.Signup{signup}
	return camper, activity, &camper.Signups[0]
}

func TestOnlyScalars(t *testing.T) {
	camper, _, _ := cyclicGraph()

	got := serializer.Only(camper, "id", "name", "age")
	assert.Equal(t, map[string]any{"id": uint(1), "name": "Ann", "age": 12}, got)
}

func TestOnlyNestedRelation(t *testing.T) {
	camper, _, _ := cyclicGraph()

	got := serializer.Only(camper, "id", "name", "age", "signups.activity")
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1, "name": "Ann", "age": 12,
		"signups": [{"activity": {"id": 2, "name": "Archery", "difficulty": 3}}]
	}`, string(raw))
}

func TestOnlySignupWithBothSides(t *testing.T) {
	_, _, signup := cyclicGraph()

	got := serializer.Only(signup, "id", "camper_id", "activity_id", "time", "activity", "camper")
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 3, "camper_id": 1, "activity_id": 2, "time": 9,
		"camper": {"id": 1, "name": "Ann", "age": 12},
		"activity": {"id": 2, "name": "Archery", "difficulty": 3}
	}`, string(raw))
}

func TestExclusionRulesCutCycles(t *testing.T) {
	_, activity, signup := cyclicGraph()

	// signup 声明了 -camper.signups，即使白名单要求也不会渲染
	got := serializer.Only(signup, "camper.signups", "camper.name")
	assert.Equal(t, map[string]any{"camper": map[string]any{"name": "Ann"}}, got)

	// activity 声明了 -signups.activity
	got = serializer.Only(activity, "signups.activity", "signups.time")
	assert.Equal(t, map[string]any{"signups": []map[string]any{{"time": 9}}}, got)
}

func TestDeepPathsTerminate(t *testing.T) {
	camper, _, _ := cyclicGraph()

	// 沿着环走很多层，渲染深度由白名单限制
	path := "signups"
	for i := 0; i < 50; i++ {
		path += ".activity.signups"
	}
	got := serializer.Only(camper, path)
	_, err := json.Marshal(got)
	require.NoError(t, err)
}

func TestUnknownAndMissingRelations(t *testing.T) {
	signup := &model.Signup{Model: model.Model{ID: 5}, Time: 1}

	got := serializer.Only(signup, "id", "password", "camper", "created_at")
	assert.Equal(t, map[string]any{"id": uint(5)}, got)
}

func TestOnlyMany(t *testing.T) {
	campers := []model.Camper{
		{Model: model.Model{ID: 1}, Name: "Ann", Age: 12},
		{Model: model.Model{ID: 2}, Name: "Bo", Age: 9},
	}
	got := serializer.OnlyMany(campers, "id", "name")
	assert.Equal(t, []map[string]any{
		{"id": uint(1), "name": "Ann"},
		{"id": uint(2), "name": "Bo"},
	}, got)

	assert.Equal(t, []map[string]any{}, serializer.OnlyMany([]model.Camper{}, "id"))
}

func TestEmptyManyRelationRendersEmptyList(t *testing.T) {
	camper := &model.Camper{Model: model.Model{ID: 1}, Name: "Ann", Age: 12}
	got := serializer.Only(camper, "signups.activity")
	assert.Equal(t, map[string]any{"signups": []map[string]any{}}, got)
}
