package tools

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// SendWorkbook 以附件形式把工作簿写入响应
func SendWorkbook(c *gin.Context, f *excelize.File, displayName string) error {
	escaped := url.QueryEscape(displayName)

	c.Header("Content-Type", ExcelContentType)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
	c.Status(http.StatusOK)
	_, err := f.WriteTo(c.Writer)
	return err
}
