package repository

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/model"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// CamperInput 创建或部分更新营员，nil 表示请求中没有该字段
type CamperInput struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

type ActivityInput struct {
	Name       *string `json:"name"`
	Difficulty *int    `json:"difficulty"`
}

type SignupInput struct {
	CamperID   *uint `json:"camper_id"`
	ActivityID *uint `json:"activity_id"`
	Time       *int  `json:"time"`
}

func checkName(result *multierror.Error, name *string, partial bool) *multierror.Error {
	if name == nil {
		if partial {
			return result
		}
		return multierror.Append(result, errs.Missing("name"))
	}
	if strings.TrimSpace(*name) == "" {
		return multierror.Append(result, errs.Missing("name"))
	}
	if utf8.RuneCountInString(*name) > model.NameMaxLen {
		return multierror.Append(result, errs.TooLong("name", model.NameMaxLen))
	}
	return result
}

func checkRange(result *multierror.Error, field string, v *int, min, max int, partial bool) *multierror.Error {
	if v == nil {
		if partial {
			return result
		}
		return multierror.Append(result, errs.Missing(field))
	}
	if *v < min || *v > max {
		return multierror.Append(result, errs.OutOfRange(field, *v, min, max))
	}
	return result
}

// ValidateCamper partial 为 true 时只校验请求中出现的字段
func ValidateCamper(in CamperInput, partial bool) error {
	var result *multierror.Error
	result = checkName(result, in.Name, partial)
	result = checkRange(result, "age", in.Age, model.CamperMinAge, model.CamperMaxAge, partial)
	return result.ErrorOrNil()
}

func ValidateActivity(in ActivityInput) error {
	var result *multierror.Error
	result = checkName(result, in.Name, false)
	if in.Difficulty == nil {
		result = multierror.Append(result, errs.Missing("difficulty"))
	}
	return result.ErrorOrNil()
}

func ValidateSignup(in SignupInput) error {
	var result *multierror.Error
	if in.CamperID == nil {
		result = multierror.Append(result, errs.Missing("camper_id"))
	}
	if in.ActivityID == nil {
		result = multierror.Append(result, errs.Missing("activity_id"))
	}
	result = checkRange(result, "time", in.Time, model.SignupMinTime, model.SignupMaxTime, false)
	return result.ErrorOrNil()
}
