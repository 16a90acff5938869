// Package errs 定义业务层错误类型：缺少字段、取值越界、文本超长、引用不存在、记录不存在
package errs

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// MissingFieldError 创建请求缺少必填字段或字段为空
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// RangeError 数值超出允许范围 [Min, Max]
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d", e.Field, e.Min, e.Max)
}

// LengthError 文本超过最大长度（按字符计）
type LengthError struct {
	Field string
	Max   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s must be at most %d characters", e.Field, e.Max)
}

// ReferenceError 外键指向的记录不存在
type ReferenceError struct {
	Entity string
	ID     uint
}

func (e *ReferenceError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("referenced %s does not exist", e.Entity)
	}
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

// NotFoundError 按 id 查询、更新、删除时记录不存在
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func Missing(field string) error {
	return &MissingFieldError{Field: field}
}

func OutOfRange(field string, value, min, max int) error {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}

func TooLong(field string, max int) error {
	return &LengthError{Field: field, Max: max}
}

func Reference(entity string, id uint) error {
	return &ReferenceError{Entity: entity, ID: id}
}

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation 判断是否为校验类错误（缺少字段、越界、超长、引用不存在）
func IsValidation(err error) bool {
	var (
		mf *MissingFieldError
		re *RangeError
		le *LengthError
		rf *ReferenceError
	)
	return errors.As(err, &mf) || errors.As(err, &re) || errors.As(err, &le) || errors.As(err, &rf)
}

// Messages 把错误展开成文本列表，multierror 中的每一项单独成一条
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		msgs := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			msgs = append(msgs, Messages(e)...)
		}
		return msgs
	}
	return []string{err.Error()}
}
