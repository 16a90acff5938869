package response

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 是在 gin.Context 中保存错误对象的键
const ErrorContextKey = "error"

// Error 带 HTTP 状态码的错误，保留原始错误链和堆栈
type Error struct {
	Status  int
	Message string
	// Details 为空时响应体只包含 Message
	Details []string
	cause   error
	stack   pkgerrors.StackTrace
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

var (
	ErrInvalidRequest = newError(http.StatusBadRequest, "invalid request")
	ErrWriteFailed    = newError(http.StatusBadRequest, "write failed")
	ErrNotFound       = newError(http.StatusNotFound, "not found")
	ErrDatabase       = newError(http.StatusInternalServerError, "database error")
	ErrServerInternal = newError(http.StatusInternalServerError, "internal server error")
)

func newError(status int, msg string) *Error {
	return &Error{
		Status:  status,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("status:%d, msg:%s", e.Status, e.Message)
}

// GetCode 返回状态码，供 sentry 判断是否需要上报
func (e *Error) GetCode() int32 {
	return int32(e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Status == t.Status && e.Message == t.Message
}

// Messages 返回写入响应体的错误文本
func (e *Error) Messages() []string {
	if len(e.Details) > 0 {
		return e.Details
	}
	return []string{e.Message}
}

// WithOrigin 附加原始错误（带堆栈），只用于日志和 Sentry，不会写入响应体
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	wrapped := ensureStack(err)
	newErr := &Error{
		Status:  e.Status,
		Message: e.Message,
		Details: e.Details,
		cause:   wrapped,
	}
	if st, ok := wrapped.(stackTracer); ok {
		newErr.stack = st.StackTrace()
	}
	return newErr
}

// WithTips 替换响应体中的错误文本
func (e *Error) WithTips(details ...string) *Error {
	return &Error{
		Status:  e.Status,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
		stack:   e.stack,
	}
}

// WithMessage 替换错误主信息，404 响应体使用该信息
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Status:  e.Status,
		Message: msg,
		Details: e.Details,
		cause:   e.cause,
		stack:   e.stack,
	}
}

func ensureStack(err error) error {
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
