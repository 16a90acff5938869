package response

import (
	"camp-signup-system/internal/global/errs"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/internal/global/sentry"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ResponseBody 失败响应体：404 使用 error，其余使用 errors 列表
type ResponseBody struct {
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 写入失败响应并中断后续处理，5xx 错误会上报到 Sentry
func Fail(c *gin.Context, e *Error) {
	c.Set(ErrorContextKey, e)
	sentry.CaptureException(c, e)

	if e.Status == http.StatusNotFound {
		c.AbortWithStatusJSON(e.Status, ResponseBody{Error: e.Message})
		return
	}
	c.AbortWithStatusJSON(e.Status, ResponseBody{Errors: e.Messages()})
}

// FromReadErr 将查询路径上的错误转换为响应错误
func FromReadErr(err error) *Error {
	return from(err, ErrDatabase)
}

// FromWriteErr 将写入路径上的错误转换为响应错误，未知错误同样返回 400
func FromWriteErr(err error) *Error {
	return from(err, ErrWriteFailed.WithTips(err.Error()))
}

func from(err error, fallback *Error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		return ErrNotFound.WithMessage(nf.Error()).WithOrigin(err)
	}
	if errs.IsValidation(err) {
		return ErrInvalidRequest.WithTips(errs.Messages(err)...).WithOrigin(err)
	}
	return fallback.WithOrigin(err)
}

// Recovery 捕获 handler 中的 panic，返回 500
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	logger.New("Recovery").Error("处理请求时发生 panic",
		"panic", r,
		"path", c.Request.URL.Path,
		"stack", string(debug.Stack()),
	)
	Fail(c, ErrServerInternal.WithOrigin(fmt.Errorf("panic: %v", r)))
}
