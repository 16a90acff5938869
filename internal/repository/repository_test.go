package repository

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/model"
	"camp-signup-system/test"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	ctx     context.Context
	ann, bo *model.Camper
	archery *model.Activity
	canoe   *model.Activity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{db: test.NewDB(t), ctx: context.Background()}
	var err error
	f.ann, err = CreateCamper(f.ctx, f.db, CamperInput{Name: ptr("Ann"), Age: ptr(12)})
	require.NoError(t, err)
	f.bo, err = CreateCamper(f.ctx, f.db, CamperInput{Name: ptr("Bo"), Age: ptr(9)})
	require.NoError(t, err)
	f.archery, err = CreateActivity(f.ctx, f.db, ActivityInput{Name: ptr("Archery"), Difficulty: ptr(3)})
	require.NoError(t, err)
	f.canoe, err = CreateActivity(f.ctx, f.db, ActivityInput{Name: ptr("Canoe"), Difficulty: ptr(2)})
	require.NoError(t, err)
	return f
}

func (f *fixture) signup(t *testing.T, camper *model.Camper, activity *model.Activity, hour int) *model.Signup {
	t.Helper()
	s, err := CreateSignup(f.ctx, f.db, SignupInput{CamperID: ptr(camper.ID), ActivityID: ptr(activity.ID), Time: ptr(hour)})
	require.NoError(t, err)
	return s
}

func TestCreateCamperRejectsOutOfRangeAge(t *testing.T) {
	db := test.NewDB(t)
	ctx := context.Background()

	for _, age := range []int{0, 7, 19, 30} {
		_, err := CreateCamper(ctx, db, CamperInput{Name: ptr("Bo"), Age: ptr(age)})
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	}
	assert.Zero(t, test.Count(t, db, &model.Camper{}))

	camper, err := CreateCamper(ctx, db, CamperInput{Name: ptr("Ann"), Age: ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, uint(1), camper.ID)
	assert.Equal(t, int64(1), test.Count(t, db, &model.Camper{}))
}

func TestGetAndListCampers(t *testing.T) {
	f := newFixture(t)

	got, err := GetCamper(f.ctx, f.db, f.ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	_, err = GetCamper(f.ctx, f.db, 999)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, "Camper not found", err.Error())

	list, err := ListCampers(f.ctx, f.db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ann", list[0].Name)
	assert.Equal(t, "Bo", list[1].Name)
}

func TestUpdateCamper(t *testing.T) {
	f := newFixture(t)

	updated, err := UpdateCamper(f.ctx, f.db, f.ann.ID, CamperInput{Age: ptr(13)})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, 13, updated.Age)

	// 校验失败时原值保持不变
	_, err = UpdateCamper(f.ctx, f.db, f.ann.ID, CamperInput{Name: ptr("Annie"), Age: ptr(40)})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	reloaded, err := GetCamper(f.ctx, f.db, f.ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", reloaded.Name)
	assert.Equal(t, 13, reloaded.Age)

	_, err = UpdateCamper(f.ctx, f.db, 999, CamperInput{Age: ptr(40)})
	assert.True(t, errs.IsNotFound(err))
}

func TestCreateSignup(t *testing.T) {
	f := newFixture(t)

	s := f.signup(t, f.ann, f.archery, 9)
	assert.NotZero(t, s.ID)
	require.NotNil(t, s.Camper)
	require.NotNil(t, s.Activity)
	assert.Equal(t, "Ann", s.Camper.Name)
	assert.Equal(t, "Archery", s.Activity.Name)

	got, err := GetSignup(f.ctx, f.db, s.ID, "Camper", "Activity")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Time)
	assert.Equal(t, "Archery", got.Activity.Name)
}

func TestCreateSignupRejectsOutOfRangeTime(t *testing.T) {
	f := newFixture(t)

	for _, hour := range []int{-1, 24, 100} {
		_, err := CreateSignup(f.ctx, f.db, SignupInput{CamperID: ptr(f.ann.ID), ActivityID: ptr(f.archery.ID), Time: ptr(hour)})
		require.Error(t, err)
		assert.Equal(t, []string{"time must be between 0 and 23"}, errs.Messages(err))
	}
	assert.Zero(t, test.Count(t, f.db, &model.Signup{}))
}

func TestCreateSignupRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)

	_, err := CreateSignup(f.ctx, f.db, SignupInput{CamperID: ptr(uint(42)), ActivityID: ptr(uint(43)), Time: ptr(10)})
	require.Error(t, err)
	var re *errs.ReferenceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, []string{"camper 42 does not exist", "activity 43 does not exist"}, errs.Messages(err))
	assert.Zero(t, test.Count(t, f.db, &model.Signup{}))
}

func TestForeignKeyViolationIsReferenceError(t *testing.T) {
	f := newFixture(t)

	// 绕过 repository 的检查直接写入，由数据库外键拒绝
	err := f.db.Create(&model.Signup{CamperID: 77, ActivityID: f.archery.ID, Time: 3}).Error
	require.Error(t, err)
	assert.True(t, errs.IsValidation(translate(err)))
}

func TestDeleteActivityCascadesToSignupsOnly(t *testing.T) {
	f := newFixture(t)

	f.signup(t, f.ann, f.archery, 9)
	f.signup(t, f.bo, f.archery, 10)
	f.signup(t, f.ann, f.archery, 15)
	kept := f.signup(t, f.bo, f.canoe, 11)

	require.Equal(t, int64(4), test.Count(t, f.db, &model.Signup{}))
	require.NoError(t, DeleteActivity(f.ctx, f.db, f.archery.ID))

	assert.Equal(t, int64(1), test.Count(t, f.db, &model.Signup{}))
	assert.Equal(t, int64(2), test.Count(t, f.db, &model.Camper{}))
	assert.Equal(t, int64(1), test.Count(t, f.db, &model.Activity{}))

	rest, err := ListSignups(f.ctx, f.db)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, kept.ID, rest[0].ID)

	assert.True(t, errs.IsNotFound(DeleteActivity(f.ctx, f.db, f.archery.ID)))
}

func TestDeleteCamperCascadesToSignups(t *testing.T) {
	f := newFixture(t)

	f.signup(t, f.ann, f.archery, 9)
	f.signup(t, f.ann, f.canoe, 10)
	f.signup(t, f.bo, f.canoe, 11)

	require.NoError(t, DeleteCamper(f.ctx, f.db, f.ann.ID))
	assert.Equal(t, int64(1), test.Count(t, f.db, &model.Signup{}))
	assert.Equal(t, int64(2), test.Count(t, f.db, &model.Activity{}))

	assert.True(t, errs.IsNotFound(DeleteCamper(f.ctx, f.db, f.ann.ID)))
}

func TestDeleteSignup(t *testing.T) {
	f := newFixture(t)
	s := f.signup(t, f.ann, f.archery, 9)

	require.NoError(t, DeleteSignup(f.ctx, f.db, s.ID))
	assert.Zero(t, test.Count(t, f.db, &model.Signup{}))
	assert.True(t, errs.IsNotFound(DeleteSignup(f.ctx, f.db, s.ID)))
	_, err := GetSignup(f.ctx, f.db, s.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestDerivedManyToManyViews(t *testing.T) {
	f := newFixture(t)

	f.signup(t, f.ann, f.archery, 9)
	f.signup(t, f.ann, f.archery, 14)
	f.signup(t, f.ann, f.canoe, 10)
	f.signup(t, f.bo, f.canoe, 10)

	acts, err := ActivitiesForCamper(f.ctx, f.db, f.ann.ID)
	require.NoError(t, err)
	require.Len(t, acts, 2)
	assert.Equal(t, "Archery", acts[0].Name)
	assert.Equal(t, "Canoe", acts[1].Name)

	campers, err := CampersForActivity(f.ctx, f.db, f.canoe.ID)
	require.NoError(t, err)
	require.Len(t, campers, 2)

	campers, err = CampersForActivity(f.ctx, f.db, f.archery.ID)
	require.NoError(t, err)
	require.Len(t, campers, 1)
	assert.Equal(t, "Ann", campers[0].Name)

	_, err = ActivitiesForCamper(f.ctx, f.db, 999)
	assert.True(t, errs.IsNotFound(err))
	_, err = CampersForActivity(f.ctx, f.db, 999)
	assert.True(t, errs.IsNotFound(err))
}

func TestGetCamperPreloadsSignupActivities(t *testing.T) {
	f := newFixture(t)
	f.signup(t, f.ann, f.canoe, 8)

	got, err := GetCamper(f.ctx, f.db, f.ann.ID, "Signups.Activity")
	require.NoError(t, err)
	require.Len(t, got.Signups, 1)
	require.NotNil(t, got.Signups[0].Activity)
	assert.Equal(t, "Canoe", got.Signups[0].Activity.Name)
}

func TestSignupRoster(t *testing.T) {
	f := newFixture(t)
	f.signup(t, f.bo, f.canoe, 14)
	f.signup(t, f.ann, f.archery, 9)

	rows, err := SignupRoster(f.ctx, f.db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, RosterRow{SignupID: 2, Camper: "Ann", Activity: "Archery", Time: 9}, rows[0])
	assert.Equal(t, RosterRow{SignupID: 1, Camper: "Bo", Activity: "Canoe", Time: 14}, rows[1])
}
